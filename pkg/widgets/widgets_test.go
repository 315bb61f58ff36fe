package widgets

import (
	"testing"

	"golang.org/x/image/colornames"

	"github.com/go-weft/weft/pkg/build"
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
)

// newInterpreter wires the full pipeline over the reference widget set at
// 2x display density.
func newInterpreter(t *testing.T) *build.Interpreter {
	t.Helper()
	reg := registry.New()
	eng := traits.NewEngine()
	tk := native.NewReflectToolkit()
	resolver := values.New(reg, tk, core.StaticMetrics{
		Density: 2, ScaledDensity: 2, XDPI: 320, YDPI: 320,
	})
	if err := Register(reg, eng, tk, resolver); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return build.New(build.Config{
		Registry: reg,
		Engine:   eng,
		Toolkit:  tk,
		Resolver: resolver,
	})
}

func buildTree(t *testing.T, node *core.Node) any {
	t.Helper()
	in := newInterpreter(t)
	w, err := in.Build(node)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return w
}

func TestBuildScreen(t *testing.T) {
	clicks := 0
	root := buildTree(t, core.NewNode("panel",
		core.Attributes{
			"id-holder":   true,
			"orientation": core.Symbol("vertical"),
			"padding":     core.Dp(8),
		},
		core.NewNode("label", core.Attributes{
			"id":         "title",
			"text":       "Settings",
			"text-size":  core.Sp(20),
			"text-align": core.Symbol("align-center"),
			"text-color": core.Symbol("steelblue"),
		}),
		nil,
		core.NewNode("button", core.Attributes{
			"id":       "save",
			"text":     "Save",
			"on-click": func() { clicks++ },
		}),
	))

	panel := root.(*Panel)
	if panel.Orientation != Vertical {
		t.Errorf("orientation = %v", panel.Orientation)
	}
	if panel.Padding != Uniform(16) {
		t.Errorf("padding = %v, want uniform 16px at density 2", panel.Padding)
	}
	if len(panel.Kids) != 2 {
		t.Fatalf("children = %d, want 2 (nil slot skipped)", len(panel.Kids))
	}

	label := panel.Kids[0].(*Label)
	if label.Text != "Settings" || label.TextSize != 40 || label.TextAlign != AlignCenter {
		t.Errorf("label = %+v", label)
	}
	if label.TextColor != colornames.Steelblue {
		t.Errorf("text color = %v", label.TextColor)
	}
	if !label.Enabled {
		t.Errorf("default enabled attribute not applied")
	}

	button := panel.Kids[1].(*Button)
	button.Click()
	if clicks != 1 {
		t.Errorf("on-click not wired")
	}

	// The panel declared itself id-holder; both children filed in.
	if w, ok := panel.WidgetByID("title"); !ok || w != label {
		t.Errorf("title id lookup = %v, %v", w, ok)
	}
	if w, ok := panel.WidgetByID("save"); !ok || w != button {
		t.Errorf("save id lookup = %v, %v", w, ok)
	}
}

func TestPaddingForms(t *testing.T) {
	w := buildTree(t, core.NewNode("field", core.Attributes{
		"padding": []any{core.Dp(1), 2, core.Dp(3), 4},
	}))
	f := w.(*Field)
	want := Insets{Left: 2, Top: 2, Right: 6, Bottom: 4}
	if f.Padding != want {
		t.Errorf("padding = %v, want %v", f.Padding, want)
	}
}

func TestLayoutWeightOnlyInsidePanels(t *testing.T) {
	root := buildTree(t, core.NewNode("panel", nil,
		core.NewNode("field", core.Attributes{"layout-weight": 1}),
	))
	f := root.(*Panel).Kids[0].(*Field)
	if f.LayoutWeight != 1 {
		t.Errorf("layout-weight not applied inside a panel: %v", f.LayoutWeight)
	}

	// At the root there is no panel container, so the trait must not
	// match and the attribute falls through to the generic setter, which
	// Widget happens to satisfy via SetLayoutWeight.
	w := buildTree(t, core.NewNode("field", core.Attributes{"layout-weight": 2}))
	if got := w.(*Field).LayoutWeight; got != 2 {
		t.Errorf("fallthrough layout-weight = %v", got)
	}
}

func TestConstructorOverload(t *testing.T) {
	w := buildTree(t, core.NewNode("button", core.Attributes{
		build.AttrConstructorArgs: []any{"From Ctor"},
	}))
	if got := w.(*Button).Text; got != "From Ctor" {
		t.Errorf("button text = %q", got)
	}
}

func TestCheckboxCallback(t *testing.T) {
	var got bool
	w := buildTree(t, core.NewNode("checkbox", core.Attributes{
		"checked":   true,
		"on-change": func(v bool) { got = v },
	}))
	c := w.(*Checkbox)
	if !c.Checked {
		t.Errorf("checked not set")
	}
	c.Toggle()
	if got != false || c.Checked != false {
		t.Errorf("toggle: got=%v checked=%v", got, c.Checked)
	}
}

func TestDump(t *testing.T) {
	root := buildTree(t, core.NewNode("panel", core.Attributes{"orientation": core.Symbol("vertical")},
		core.NewNode("label", core.Attributes{"text": "hi"}),
	))
	out := Dump(root)
	want := "panel[vertical] padding={0 0 0 0} children=1\n  label \"hi\" size=28 align=0\n"
	if out != want {
		t.Errorf("Dump:\n%q\nwant:\n%q", out, want)
	}
}
