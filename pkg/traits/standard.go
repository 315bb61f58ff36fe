package traits

import (
	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

// RegisterStandard installs the toolkit-independent traits every element
// hierarchy wants: "id" and "id-holder".
func RegisterStandard(e *Engine) error {
	for _, t := range []*Trait{IDTrait(), IDHolderTrait()} {
		if err := e.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// IDTrait files an element declaring an "id" attribute into the nearest
// ancestor id-holder. With no holder in scope the id is dropped silently —
// declaring ids outside a holder is legal, they just have nowhere to go. A
// holder that cannot register ids is a configuration error.
func IDTrait() *Trait {
	return &Trait{
		ID: "id",
		Apply: func(widget any, attrs core.Attributes, opts core.Options) (*Result, error) {
			id, ok := attrs.String("id")
			if !ok {
				return nil, weferr.New("traits.id", weferr.KindBadValue,
					"id attribute must be a string or symbol, got %T", attrs["id"])
			}
			holder := opts.IDHolder()
			if holder == nil {
				return nil, nil
			}
			reg, ok := holder.(core.IDRegistry)
			if !ok {
				return nil, weferr.New("traits.id", weferr.KindBadValue,
					"id-holder %T cannot register ids", holder)
			}
			reg.RegisterID(id, widget)
			return nil, nil
		},
	}
}

// IDHolderTrait marks an element as the id registry for its subtree: an
// element built with `id-holder: true` publishes itself to descendant
// options, and descendant "id" traits file into it.
func IDHolderTrait() *Trait {
	return &Trait{
		ID: "id-holder",
		Apply: func(widget any, attrs core.Attributes, opts core.Options) (*Result, error) {
			enabled, _ := attrs["id-holder"].(bool)
			if !enabled {
				return nil, nil
			}
			if _, ok := widget.(core.IDRegistry); !ok {
				return nil, weferr.New("traits.id-holder", weferr.KindBadValue,
					"widget %T cannot act as an id-holder", widget)
			}
			return &Result{
				UpdateOptions: func(o core.Options) core.Options {
					return o.WithIDHolder(widget)
				},
			}, nil
		},
	}
}
