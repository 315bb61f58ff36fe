package traits

import (
	"github.com/go-weft/weft/pkg/core"
)

// MatchFunc decides whether a trait applies to an element, given the
// attribute map as it stands when the trait's turn comes and the options
// the parent passed down.
type MatchFunc func(attrs core.Attributes, opts core.Options) bool

// ApplyFunc is a trait body. It configures widget — invoking setters,
// registering callbacks, filing the widget somewhere — and may return a
// [Result] overriding the default updates. Returning nil keeps the
// defaults: consume the trait's declared attributes, leave options alone.
//
// Errors returned by a body are not interpreted by the engine; they abort
// the build of the current node and propagate unchanged.
type ApplyFunc func(widget any, attrs core.Attributes, opts core.Options) (*Result, error)

// Result lets a trait body override the default effect of a matched trait.
// Either field may be nil to keep the default.
type Result struct {
	// UpdateAttributes replaces the default consumption (removal of the
	// trait's declared attributes) with an arbitrary rewrite of the
	// attribute map.
	UpdateAttributes func(core.Attributes) core.Attributes

	// UpdateOptions edits the options the element passes to its remaining
	// traits and, ultimately, to its children. Siblings of the element
	// never observe this edit.
	UpdateOptions func(core.Options) core.Options
}

// Trait is one registered attribute handler.
type Trait struct {
	// ID names the trait. It doubles as the default match and consumption
	// attribute when neither Attributes nor Match is set.
	ID string

	// Attributes optionally lists the attribute keys this trait is
	// responsible for. When set, the trait matches if any listed key is
	// present, and default consumption removes all of them.
	Attributes []string

	// Match optionally replaces presence-based matching with a custom
	// predicate.
	Match MatchFunc

	// Apply is the trait body. Required.
	Apply ApplyFunc
}

// matches evaluates the trait's effective match rule.
func (t *Trait) matches(attrs core.Attributes, opts core.Options) bool {
	if t.Match != nil {
		return t.Match(attrs, opts)
	}
	if len(t.Attributes) > 0 {
		for _, a := range t.Attributes {
			if attrs.Has(a) {
				return true
			}
		}
		return false
	}
	return attrs.Has(t.ID)
}

// consumed returns the attribute keys default consumption removes.
func (t *Trait) consumed() []string {
	if len(t.Attributes) > 0 {
		return t.Attributes
	}
	return []string{t.ID}
}

// Update is the effect of one trait application: a rewrite of the
// remaining attribute map and a rewrite of the options flowing to the
// element's children. Both functions are always non-nil; an unmatched
// trait yields identities.
type Update struct {
	Attributes func(core.Attributes) core.Attributes
	Options    func(core.Options) core.Options
}

// Identity is the no-op update of an unmatched trait.
func Identity() Update {
	return Update{
		Attributes: func(a core.Attributes) core.Attributes { return a },
		Options:    func(o core.Options) core.Options { return o },
	}
}
