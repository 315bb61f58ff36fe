package native

import (
	"reflect"

	"github.com/go-weft/weft/pkg/core"
)

// Setter applies one resolved attribute value to a widget.
type Setter func(widget, value any) error

// Toolkit is the native collaborator interface the build pipeline consumes.
// Implementations report failures with the structured kinds from the errors
// package: NoConstructor, NoSetter, AmbiguousSetter, UnresolvedSymbol,
// NotContainer, BadValue.
type Toolkit interface {
	// Construct builds an instance of t. Overloads are resolved against
	// the runtime types of args; a toolkit may fall back to zero-value
	// construction for types without registered constructors.
	Construct(t reflect.Type, args []any) (any, error)

	// Setter resolves the single-parameter setter with the given
	// conventional name ("SetTextSize") accepting param on type t.
	Setter(t reflect.Type, name string, param reflect.Type) (Setter, error)

	// Constant resolves a named constant ("ALIGN_LEFT") scoped to type t.
	Constant(t reflect.Type, name string) (any, error)

	// ConvertDimension converts a unit-qualified magnitude to integer
	// pixels under the given display metrics.
	ConvertDimension(value float64, unit core.Unit, metrics core.DisplayMetrics) (int, error)

	// AppendChild attaches a built child to its parent, in call order.
	AppendChild(parent, child any) error
}

// ChildAppender is the capability a widget exposes to receive children.
// ReflectToolkit prefers this interface over reflective method lookup.
type ChildAppender interface {
	AppendChild(child any) error
}
