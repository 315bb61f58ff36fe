package widgets

import (
	"reflect"

	"golang.org/x/image/colornames"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
)

// Element types and the enum types constant tables hang off.
var (
	PanelType    = reflect.TypeOf(&Panel{})
	LabelType    = reflect.TypeOf(&Label{})
	ButtonType   = reflect.TypeOf(&Button{})
	FieldType    = reflect.TypeOf(&Field{})
	CheckboxType = reflect.TypeOf(&Checkbox{})

	alignmentType   = reflect.TypeOf(Alignment(0))
	orientationType = reflect.TypeOf(Orientation(0))
)

// Register wires the reference widget set into a registry, a trait engine,
// and a toolkit. resolver backs the traits that interpret dimension
// values; it should be built over the same registry and toolkit.
func Register(reg *registry.Registry, eng *traits.Engine, tk *native.ReflectToolkit, resolver *values.Resolver) error {
	if err := registerTypes(reg); err != nil {
		return err
	}
	if err := registerTables(tk); err != nil {
		return err
	}
	return registerTraits(eng, resolver)
}

// registerTypes declares the element hierarchy. "widget" is the abstract
// root: no class of its own, but the traits, defaults, and the color
// symbol table every element inherits.
func registerTypes(reg *registry.Registry) error {
	entries := []struct {
		keyword string
		desc    *registry.Descriptor
	}{
		{"widget", &registry.Descriptor{
			Traits:     []string{"id", "id-holder", "padding", "layout-weight"},
			Attributes: core.Attributes{"enabled": true},
			Values:     colorValues(),
			ValueNamespaces: map[string]any{
				"visibility": reflect.TypeOf(Visibility(0)),
			},
		}},
		{"panel", &registry.Descriptor{
			Class:    PanelType,
			Inherits: "widget",
			ValueNamespaces: map[string]any{
				"orientation": orientationType,
			},
			Attributes: core.Attributes{"orientation": core.Symbol("horizontal")},
		}},
		{"label", &registry.Descriptor{
			Class:    LabelType,
			Inherits: "widget",
			ValueNamespaces: map[string]any{
				"text-align": alignmentType,
			},
			Attributes: core.Attributes{"text-size": core.Sp(14)},
		}},
		{"button", &registry.Descriptor{
			Class:    ButtonType,
			Inherits: "label",
			Traits:   []string{"on-click"},
		}},
		{"field", &registry.Descriptor{
			Class:    FieldType,
			Inherits: "widget",
		}},
		{"checkbox", &registry.Descriptor{
			Class:    CheckboxType,
			Inherits: "widget",
		}},
	}
	for _, e := range entries {
		if err := reg.Register(e.keyword, e.desc); err != nil {
			return err
		}
	}
	return nil
}

// registerTables installs the constructor overloads and the constant
// tables convention-derived symbols resolve against.
func registerTables(tk *native.ReflectToolkit) error {
	if err := tk.RegisterConstructor(ButtonType, NewButton); err != nil {
		return err
	}

	tk.RegisterConstants(alignmentType, map[string]any{
		"ALIGN_LEFT":   AlignLeft,
		"ALIGN_CENTER": AlignCenter,
		"ALIGN_RIGHT":  AlignRight,
	})
	tk.RegisterConstants(orientationType, map[string]any{
		"HORIZONTAL": Horizontal,
		"VERTICAL":   Vertical,
	})
	tk.RegisterConstants(reflect.TypeOf(Visibility(0)), map[string]any{
		"VISIBLE":   Visible,
		"INVISIBLE": Invisible,
		"GONE":      Gone,
	})
	return nil
}

// colorValues exposes the SVG 1.1 color names as a symbol table, so
// `background-color: :steelblue` works on every element.
func colorValues() map[string]any {
	out := make(map[string]any, len(colornames.Map))
	for name, c := range colornames.Map {
		out[name] = c
	}
	return out
}
