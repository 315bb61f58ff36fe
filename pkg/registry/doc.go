// Package registry maps element keywords to the widget types they
// instantiate and the metadata a build needs: inheritance links, trait
// lists, default attributes, symbolic value tables, and container roles.
//
// A [Registry] is an ordinary value, created with [New] and populated during
// application startup. Builds only read it, so all lookups take a read lock
// and the expected access pattern is registration-then-read-mostly. Tests
// create private instances instead of sharing process state.
//
// # Inheritance
//
// Element keywords form single-parent chains ("ok-button" inherits "button"
// inherits "widget"). Chain-aware lookups resolve the most specific entry
// first: [Registry.AllTraits] concatenates a type's own traits before its
// ancestors', [Registry.DefaultAttributes] lets child defaults shadow parent
// defaults, and [Registry.LookupValue] returns the nearest value binding.
// Registration refuses chains that would cycle.
package registry
