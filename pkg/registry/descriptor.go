package registry

import (
	"reflect"

	"github.com/go-weft/weft/pkg/core"
)

// Descriptor is the registry entry for one element keyword.
type Descriptor struct {
	// Class is the native widget type to instantiate. May be nil for
	// abstract keywords that exist only to be inherited from, or for
	// subtypes that reuse an ancestor's class.
	Class reflect.Type

	// Inherits names the parent keyword, or "" for a root type.
	Inherits string

	// Traits lists the trait ids this type itself contributes, in the
	// order they should run. Inherited traits are appended behind these at
	// lookup time.
	Traits []string

	// Values binds symbolic value names to native constants, scoped to
	// this type and everything inheriting from it.
	Values map[string]any

	// ValueNamespaces maps an attribute name to the lookup type used for
	// convention-derived constants when no direct value binding exists.
	// An entry may be a reflect.Type or another registered keyword.
	ValueNamespaces map[string]any

	// Attributes holds default attribute values merged under the caller's
	// attributes for every built instance of this type.
	Attributes core.Attributes

	// ContainerType optionally overrides the keyword advertised to
	// children as "what kind of container am I". Layout-parameter traits
	// select on it.
	ContainerType string
}

// clone returns a copy safe to hand to callers: maps and slices are copied
// one level deep so registry state cannot be mutated from outside.
func (d *Descriptor) clone() *Descriptor {
	out := &Descriptor{
		Class:         d.Class,
		Inherits:      d.Inherits,
		ContainerType: d.ContainerType,
		Attributes:    d.Attributes.Clone(),
	}
	if d.Traits != nil {
		out.Traits = append([]string(nil), d.Traits...)
	}
	if d.Values != nil {
		out.Values = make(map[string]any, len(d.Values))
		for k, v := range d.Values {
			out.Values[k] = v
		}
	}
	if d.ValueNamespaces != nil {
		out.ValueNamespaces = make(map[string]any, len(d.ValueNamespaces))
		for k, v := range d.ValueNamespaces {
			out.ValueNamespaces[k] = v
		}
	}
	return out
}
