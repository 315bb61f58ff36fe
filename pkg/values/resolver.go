package values

import (
	"reflect"
	"sync"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
)

// Resolver turns raw attribute values into native ones, against one
// registry, one toolkit, and one display-metrics source.
type Resolver struct {
	registry *registry.Registry
	toolkit  native.Toolkit
	metrics  core.MetricsProvider

	mu     sync.Mutex
	cached core.DisplayMetrics
	valid  bool
}

// New creates a resolver. metrics may be nil, in which case dimensions
// convert under [core.DefaultMetrics].
func New(reg *registry.Registry, tk native.Toolkit, metrics core.MetricsProvider) *Resolver {
	return &Resolver{
		registry: reg,
		toolkit:  tk,
		metrics:  metrics,
	}
}

// Resolve maps a raw attribute value to the native value to hand to a
// setter. keyword scopes symbolic lookups to the element type being built;
// attribute, when non-empty, selects the value-namespace for
// convention-derived constants.
//
//   - [core.Dimension] converts to integer pixels for the current display.
//   - [core.Symbol] resolves through the type's value tables, then through
//     the constant table of the namespace lookup type. No binding and no
//     constant is an UnresolvedSymbol error.
//   - Numerics narrow to their natural representation; everything else
//     passes through unchanged.
func (r *Resolver) Resolve(keyword string, raw any, attribute string) (any, error) {
	switch v := raw.(type) {
	case core.Dimension:
		return r.pixels(v)
	case core.Symbol:
		return r.symbol(keyword, string(v), attribute)
	default:
		return native.CoerceNumber(raw), nil
	}
}

// symbol implements the two-stage symbolic lookup.
func (r *Resolver) symbol(keyword, name, attribute string) (any, error) {
	if v, ok := r.registry.LookupValue(keyword, name); ok {
		return v, nil
	}

	lookup, err := r.lookupType(keyword, attribute)
	if err != nil {
		return nil, err
	}
	v, err := r.toolkit.Constant(lookup, ConstantName(name))
	if err != nil {
		return nil, &weferr.Error{
			Op:        "values.Resolve",
			Kind:      weferr.KindUnresolvedSymbol,
			Keyword:   keyword,
			Attribute: attribute,
			Err:       err,
		}
	}
	return v, nil
}

// lookupType picks the type whose constants back convention-derived
// resolution: the attribute's value-namespace entry when one exists
// anywhere on the inheritance chain, otherwise the element's own class.
func (r *Resolver) lookupType(keyword, attribute string) (reflect.Type, error) {
	if attribute != "" {
		if ns, ok := r.registry.LookupNamespace(keyword, attribute); ok {
			return r.registry.ResolveClass(ns)
		}
	}
	return r.registry.ResolveClass(keyword)
}

// pixels converts a dimension under the memoized metrics of the resolver's
// provider.
func (r *Resolver) pixels(d core.Dimension) (int, error) {
	return r.toolkit.ConvertDimension(d.Value, d.Unit, r.displayMetrics())
}

func (r *Resolver) displayMetrics() core.DisplayMetrics {
	if r.metrics == nil {
		return core.DefaultMetrics
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.valid {
		r.cached = r.metrics.DisplayMetrics()
		r.valid = true
	}
	return r.cached
}

// InvalidateMetrics drops the memoized display metrics, for hosts whose
// display configuration can change between builds.
func (r *Resolver) InvalidateMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valid = false
}
