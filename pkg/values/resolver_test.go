package values

import (
	"reflect"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
)

type fakeLabel struct{}
type fakeGravity struct{}

var (
	labelType   = reflect.TypeOf(&fakeLabel{})
	gravityType = reflect.TypeOf(fakeGravity{})
)

// countingMetrics counts how often the host is asked for display metrics.
type countingMetrics struct {
	calls   int
	metrics core.DisplayMetrics
}

func (m *countingMetrics) DisplayMetrics() core.DisplayMetrics {
	m.calls++
	return m.metrics
}

func testResolver(t *testing.T, metrics core.MetricsProvider) (*Resolver, *registry.Registry, *native.ReflectToolkit) {
	t.Helper()
	reg := registry.New()
	if err := reg.Register("label", &registry.Descriptor{
		Class:           labelType,
		Values:          map[string]any{"invisible": 4},
		ValueNamespaces: map[string]any{"text-align": gravityType},
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("hint", &registry.Descriptor{Inherits: "label"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tk := native.NewReflectToolkit()
	tk.RegisterConstants(gravityType, map[string]any{"ALIGN_LEFT": 3, "ALIGN_RIGHT": 5})
	tk.RegisterConstants(labelType, map[string]any{"VISIBLE": 0})

	return New(reg, tk, metrics), reg, tk
}

func TestResolve_Passthrough(t *testing.T) {
	r, _, _ := testResolver(t, nil)

	cases := []struct {
		raw  any
		want any
	}{
		{"hello", "hello"},
		{true, true},
		{int64(7), 7},
		{3.0, 3},
		{2.5, 2.5},
	}
	for _, tc := range cases {
		got, err := r.Resolve("label", tc.raw, "")
		if err != nil {
			t.Fatalf("Resolve(%v): %v", tc.raw, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Resolve(%v) = %v (%T), want %v (%T)", tc.raw, got, got, tc.want, tc.want)
		}
	}
}

func TestResolve_ValueTableWinsOverConvention(t *testing.T) {
	r, _, _ := testResolver(t, nil)

	got, err := r.Resolve("label", core.Symbol("invisible"), "visibility")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 4 {
		t.Errorf("Resolve(:invisible) = %v, want table value 4", got)
	}

	// Subtypes inherit the binding.
	got, err = r.Resolve("hint", core.Symbol("invisible"), "visibility")
	if err != nil {
		t.Fatalf("Resolve via chain: %v", err)
	}
	if got != 4 {
		t.Errorf("Resolve(:invisible) on subtype = %v, want 4", got)
	}
}

func TestResolve_NamespaceConstant(t *testing.T) {
	r, _, _ := testResolver(t, nil)

	// text-align has a namespace entry pointing at the gravity type, so
	// :align-left resolves to gravity's ALIGN_LEFT.
	got, err := r.Resolve("label", core.Symbol("align-left"), "text-align")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 3 {
		t.Errorf("Resolve(:align-left) = %v, want 3", got)
	}

	// Namespace entries are chain-visible.
	got, err = r.Resolve("hint", core.Symbol("align-right"), "text-align")
	if err != nil {
		t.Fatalf("Resolve via chain: %v", err)
	}
	if got != 5 {
		t.Errorf("Resolve(:align-right) on subtype = %v, want 5", got)
	}
}

func TestResolve_OwnClassConstant(t *testing.T) {
	r, _, _ := testResolver(t, nil)

	// No namespace for "visibility": the element's own class is the
	// lookup type.
	got, err := r.Resolve("label", core.Symbol("visible"), "visibility")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 0 {
		t.Errorf("Resolve(:visible) = %v, want 0", got)
	}
}

func TestResolve_UnresolvedSymbol(t *testing.T) {
	r, _, _ := testResolver(t, nil)

	_, err := r.Resolve("label", core.Symbol("no-such-thing"), "visibility")
	if weferr.KindOf(err) != weferr.KindUnresolvedSymbol {
		t.Errorf("expected UnresolvedSymbol, got %v", err)
	}
}

func TestResolve_DimensionMemoizesMetrics(t *testing.T) {
	metrics := &countingMetrics{metrics: core.DisplayMetrics{Density: 2, ScaledDensity: 2, XDPI: 320, YDPI: 320}}
	r, _, _ := testResolver(t, metrics)

	for i := 0; i < 3; i++ {
		got, err := r.Resolve("label", core.Dp(10), "padding")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != 20 {
			t.Errorf("Resolve(10dp) = %v, want 20 at density 2", got)
		}
	}
	if metrics.calls != 1 {
		t.Errorf("metrics provider consulted %d times, want 1", metrics.calls)
	}

	r.InvalidateMetrics()
	if _, err := r.Resolve("label", core.Dp(10), "padding"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if metrics.calls != 2 {
		t.Errorf("metrics provider consulted %d times after invalidation, want 2", metrics.calls)
	}
}

// sliceMetrics has a non-comparable dynamic type when stored in an
// interface.
type sliceMetrics struct {
	densities []float64
}

func (m sliceMetrics) DisplayMetrics() core.DisplayMetrics {
	d := m.densities[0]
	return core.DisplayMetrics{Density: d, ScaledDensity: d, XDPI: 160 * d, YDPI: 160 * d}
}

func TestResolve_NonComparableMetricsProvider(t *testing.T) {
	r, _, _ := testResolver(t, sliceMetrics{densities: []float64{2}})

	got, err := r.Resolve("label", core.Dp(10), "padding")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 20 {
		t.Errorf("Resolve(10dp) = %v, want 20 at density 2", got)
	}
}

func TestConstantName(t *testing.T) {
	cases := map[string]string{
		"align-left":   "ALIGN_LEFT",
		"center":       "CENTER",
		"match-parent": "MATCH_PARENT",
	}
	for in, want := range cases {
		if got := ConstantName(in); got != want {
			t.Errorf("ConstantName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKeywordName(t *testing.T) {
	cases := map[string]string{
		"Label":     "label",
		"TextField": "text-field",
		"Panel":     "panel",
	}
	for in, want := range cases {
		if got := KeywordName(in); got != want {
			t.Errorf("KeywordName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetterName(t *testing.T) {
	cases := map[string]string{
		"text":      "SetText",
		"text-size": "SetTextSize",
		"on-click":  "SetOnClick",
	}
	for in, want := range cases {
		if got := SetterName(in); got != want {
			t.Errorf("SetterName(%q) = %q, want %q", in, got, want)
		}
	}
}
