package widgets

import (
	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
)

// registerTraits installs the standard traits plus the toolkit's own:
// on-click, padding, and the panel-scoped layout-weight.
func registerTraits(eng *traits.Engine, resolver *values.Resolver) error {
	if err := traits.RegisterStandard(eng); err != nil {
		return err
	}
	for _, t := range []*traits.Trait{
		onClickTrait(),
		paddingTrait(resolver),
		layoutWeightTrait(),
	} {
		if err := eng.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// onClickTrait wires a click callback. Kept as a trait rather than a
// setter so subtypes can intercept and wrap the handler.
func onClickTrait() *traits.Trait {
	return &traits.Trait{
		ID: "on-click",
		Apply: func(widget any, attrs core.Attributes, opts core.Options) (*traits.Result, error) {
			fn, ok := attrs["on-click"].(func())
			if !ok {
				return nil, weferr.New("widgets.on-click", weferr.KindBadValue,
					"on-click must be a func(), got %T", attrs["on-click"])
			}
			c, ok := widget.(interface{ SetOnClick(func()) })
			if !ok {
				return nil, weferr.New("widgets.on-click", weferr.KindBadValue,
					"widget %T is not clickable", widget)
			}
			c.SetOnClick(fn)
			return nil, nil
		},
	}
}

// paddingTrait accepts either one value for all edges or a
// [left, top, right, bottom] list, each entry a number or dimension. The
// generic setter path cannot express either spelling, which is exactly
// what traits are for.
func paddingTrait(resolver *values.Resolver) *traits.Trait {
	return &traits.Trait{
		ID: "padding",
		Apply: func(widget any, attrs core.Attributes, opts core.Options) (*traits.Result, error) {
			w, ok := widget.(interface{ SetPadding(Insets) })
			if !ok {
				return nil, weferr.New("widgets.padding", weferr.KindBadValue,
					"widget %T has no padding", widget)
			}

			edge := func(v any) (int, error) {
				resolved, err := resolver.Resolve("widget", v, "padding")
				if err != nil {
					return 0, err
				}
				px, ok := native.Int(resolved)
				if !ok {
					return 0, weferr.New("widgets.padding", weferr.KindBadValue,
						"padding edge must be numeric, got %T", resolved)
				}
				return px, nil
			}

			switch v := attrs["padding"].(type) {
			case []any:
				if len(v) != 4 {
					return nil, weferr.New("widgets.padding", weferr.KindBadValue,
						"padding list must have 4 entries, got %d", len(v))
				}
				var in Insets
				for i, target := range []*int{&in.Left, &in.Top, &in.Right, &in.Bottom} {
					px, err := edge(v[i])
					if err != nil {
						return nil, err
					}
					*target = px
				}
				w.SetPadding(in)
			default:
				px, err := edge(v)
				if err != nil {
					return nil, err
				}
				w.SetPadding(Uniform(px))
			}
			return nil, nil
		},
	}
}

// layoutWeightTrait distributes leftover panel space. It only applies to
// children of a panel, which is what the container-type option is for:
// the same attribute on a child of some future grid container would be
// claimed by that container's own trait instead.
func layoutWeightTrait() *traits.Trait {
	return &traits.Trait{
		ID:         "layout-weight",
		Attributes: []string{"layout-weight"},
		Match: func(attrs core.Attributes, opts core.Options) bool {
			return opts.ContainerType() == "panel" && attrs.Has("layout-weight")
		},
		Apply: func(widget any, attrs core.Attributes, opts core.Options) (*traits.Result, error) {
			weight, ok := native.Float64(attrs["layout-weight"])
			if !ok {
				return nil, weferr.New("widgets.layout-weight", weferr.KindBadValue,
					"layout-weight must be numeric, got %T", attrs["layout-weight"])
			}
			w, ok := widget.(interface{ SetLayoutWeight(float64) })
			if !ok {
				return nil, weferr.New("widgets.layout-weight", weferr.KindBadValue,
					"widget %T has no layout weight", widget)
			}
			w.SetLayoutWeight(weight)
			return nil, nil
		},
	}
}
