package native

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

type probe struct {
	Text  string
	Size  int
	Scale float64
}

func (p *probe) SetText(s string)   { p.Text = s }
func (p *probe) SetSize(n int)      { p.Size = n }
func (p *probe) SetScale(f float64) { p.Scale = f }

type sink struct{ kids []any }

func (s *sink) AddChild(c any) { s.kids = append(s.kids, c) }

var probeType = reflect.TypeOf(&probe{})

func TestConstruct_ZeroValueFallback(t *testing.T) {
	tk := NewReflectToolkit()
	w, err := tk.Construct(probeType, nil)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if _, ok := w.(*probe); !ok {
		t.Fatalf("Construct returned %T", w)
	}
}

func TestConstruct_OverloadResolution(t *testing.T) {
	tk := NewReflectToolkit()
	tk.RegisterConstructor(probeType, func(text string) *probe { return &probe{Text: text} })
	tk.RegisterConstructor(probeType, func(text string, size int) *probe {
		return &probe{Text: text, Size: size}
	})

	w, err := tk.Construct(probeType, []any{"a", 3})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if p := w.(*probe); p.Text != "a" || p.Size != 3 {
		t.Errorf("wrong overload: %+v", p)
	}

	// Numeric flavors convert to the parameter type.
	w, err = tk.Construct(probeType, []any{"b", int64(4)})
	if err != nil {
		t.Fatalf("Construct with int64: %v", err)
	}
	if w.(*probe).Size != 4 {
		t.Errorf("int64 arg not converted: %+v", w)
	}

	// Zero args still zero-construct even with overloads registered.
	if _, err := tk.Construct(probeType, nil); err != nil {
		t.Errorf("zero-arg fallback lost: %v", err)
	}

	_, err = tk.Construct(probeType, []any{true})
	if weferr.KindOf(err) != weferr.KindNoConstructor {
		t.Errorf("expected NoConstructor, got %v", err)
	}
}

func TestRegisterConstructor_RejectsBadFuncs(t *testing.T) {
	tk := NewReflectToolkit()
	cases := []any{
		"not a func",
		func(s ...string) *probe { return nil },
		func() (int, error) { return 0, nil },
	}
	for _, fn := range cases {
		if err := tk.RegisterConstructor(probeType, fn); weferr.KindOf(err) != weferr.KindBadValue {
			t.Errorf("RegisterConstructor(%T) err = %v, want BadValue", fn, err)
		}
	}
}

func TestConstruct_ConstructorError(t *testing.T) {
	tk := NewReflectToolkit()
	boom := errors.New("boom")
	tk.RegisterConstructor(probeType, func(text string) (*probe, error) { return nil, boom })
	if _, err := tk.Construct(probeType, []any{"x"}); err != boom {
		t.Errorf("constructor error lost: %v", err)
	}
}

func TestSetter_MethodReflection(t *testing.T) {
	tk := NewReflectToolkit()
	set, err := tk.Setter(probeType, "SetText", reflect.TypeOf(""))
	if err != nil {
		t.Fatalf("Setter: %v", err)
	}
	p := &probe{}
	if err := set(p, "hello"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if p.Text != "hello" {
		t.Errorf("setter did not apply: %+v", p)
	}

	// Numeric conversion between value and parameter representations.
	set, err = tk.Setter(probeType, "SetScale", reflect.TypeOf(int(0)))
	if err != nil {
		t.Fatalf("Setter(SetScale, int): %v", err)
	}
	if err := set(p, 2); err != nil {
		t.Fatalf("set: %v", err)
	}
	if p.Scale != 2 {
		t.Errorf("numeric conversion failed: %+v", p)
	}

	_, err = tk.Setter(probeType, "SetMissing", reflect.TypeOf(""))
	if weferr.KindOf(err) != weferr.KindNoSetter {
		t.Errorf("expected NoSetter, got %v", err)
	}
}

func TestSetter_TableBeatsReflectionAndAmbiguity(t *testing.T) {
	tk := NewReflectToolkit()
	tk.RegisterSetter(probeType, "SetText", reflect.TypeOf(""), func(w, v any) error {
		w.(*probe).Text = "table:" + v.(string)
		return nil
	})
	set, err := tk.Setter(probeType, "SetText", reflect.TypeOf(""))
	if err != nil {
		t.Fatalf("Setter: %v", err)
	}
	p := &probe{}
	set(p, "x")
	if p.Text != "table:x" {
		t.Errorf("registered table did not win: %+v", p)
	}

	// Two entries matching the same value type is an ambiguity.
	tk.RegisterSetter(probeType, "SetText", reflect.TypeOf(""), func(w, v any) error { return nil })
	_, err = tk.Setter(probeType, "SetText", reflect.TypeOf(""))
	if weferr.KindOf(err) != weferr.KindAmbiguousSetter {
		t.Errorf("expected AmbiguousSetter, got %v", err)
	}
}

type fluent struct {
	Badge int
	kids  []any
}

func (f *fluent) SetBadge(n int) int { f.Badge = n; return f.Badge }
func (f *fluent) SetFail(s string) error {
	return errors.New("fail:" + s)
}
func (f *fluent) AddChild(c any) int {
	f.kids = append(f.kids, c)
	return len(f.kids)
}

func TestSetter_FluentResultIgnored(t *testing.T) {
	tk := NewReflectToolkit()
	f := &fluent{}
	set, err := tk.Setter(reflect.TypeOf(f), "SetBadge", reflect.TypeOf(0))
	if err != nil {
		t.Fatalf("Setter: %v", err)
	}
	if err := set(f, 7); err != nil {
		t.Fatalf("set: %v", err)
	}
	if f.Badge != 7 {
		t.Errorf("setter did not apply: %+v", f)
	}

	// Error results still surface.
	set, err = tk.Setter(reflect.TypeOf(f), "SetFail", reflect.TypeOf(""))
	if err != nil {
		t.Fatalf("Setter(SetFail): %v", err)
	}
	if err := set(f, "x"); err == nil || err.Error() != "fail:x" {
		t.Errorf("error result lost: %v", err)
	}
}

func TestAppendChild_FluentResultIgnored(t *testing.T) {
	tk := NewReflectToolkit()
	f := &fluent{}
	if err := tk.AppendChild(f, "kid"); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if len(f.kids) != 1 || f.kids[0] != "kid" {
		t.Errorf("child not attached: %v", f.kids)
	}
}

func TestConstant_PointerFallsBackToElem(t *testing.T) {
	tk := NewReflectToolkit()
	tk.RegisterConstants(probeType.Elem(), map[string]any{"VISIBLE": 0})

	if v, err := tk.Constant(probeType, "VISIBLE"); err != nil || v != 0 {
		t.Errorf("Constant via pointer = %v, %v", v, err)
	}
	_, err := tk.Constant(probeType, "MISSING")
	if weferr.KindOf(err) != weferr.KindUnresolvedSymbol {
		t.Errorf("expected UnresolvedSymbol, got %v", err)
	}
}

func TestAppendChild(t *testing.T) {
	tk := NewReflectToolkit()
	s := &sink{}
	if err := tk.AppendChild(s, "kid"); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if len(s.kids) != 1 || s.kids[0] != "kid" {
		t.Errorf("child not attached: %v", s.kids)
	}

	err := tk.AppendChild(&probe{}, "kid")
	if weferr.KindOf(err) != weferr.KindNotContainer {
		t.Errorf("expected NotContainer, got %v", err)
	}
}

func TestPixelSize(t *testing.T) {
	m := func(density float64) core.DisplayMetrics {
		return core.DisplayMetrics{Density: density, ScaledDensity: density, XDPI: 160 * density, YDPI: 160 * density}
	}

	// Pixel units ignore metrics; at density 1 a dp equals a px.
	if got, _ := PixelSize(10, core.UnitPx, m(3)); got != 10 {
		t.Errorf("10px = %d", got)
	}
	if got, _ := PixelSize(10, core.UnitDp, m(1)); got != 10 {
		t.Errorf("10dp at density 1 = %d", got)
	}

	// Output scales monotonically with density.
	prev := 0
	for _, density := range []float64{0.75, 1, 1.5, 2, 3} {
		got, err := PixelSize(10, core.UnitDp, m(density))
		if err != nil {
			t.Fatalf("PixelSize: %v", err)
		}
		if got < prev {
			t.Errorf("10dp at density %v = %d, below %d", density, got, prev)
		}
		prev = got
	}

	// Physical units derive from DPI, 72 points to the inch.
	if got, _ := PixelSize(72, core.UnitPt, m(1)); got != 160 {
		t.Errorf("72pt at 160dpi = %d, want 160", got)
	}
	if got, _ := PixelSize(1, core.UnitIn, m(2)); got != 320 {
		t.Errorf("1in at 320dpi = %d", got)
	}

	// Rounding is half away from zero.
	if got, _ := PixelSize(1, core.UnitDp, m(1.5)); got != 2 {
		t.Errorf("1dp at density 1.5 = %d, want 2", got)
	}

	if _, err := PixelSize(1, core.Unit(99), m(1)); weferr.KindOf(err) != weferr.KindBadValue {
		t.Errorf("unknown unit not rejected: %v", err)
	}
}

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{int64(5), 5},
		{uint8(5), 5},
		{float32(2), 2},
		{2.0, 2},
		{2.5, 2.5},
		{"s", "s"},
		{true, true},
	}
	for _, tc := range cases {
		if got := CoerceNumber(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("CoerceNumber(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
