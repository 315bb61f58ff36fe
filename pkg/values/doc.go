// Package values resolves raw attribute values from a description tree into
// the native values setters accept: symbolic names into constants, unit
// dimensions into pixels, loose numerics into their natural representation.
//
// Resolution is scoped by the element keyword the attribute belongs to.
// A [core.Symbol] is first looked up in the element type's value tables,
// walking the inheritance chain nearest-first; failing that, a conventional
// constant name is derived ([ConstantName]) and fetched from a lookup type
// — the one a value-namespace entry binds to the attribute, or the
// element's own class. A [core.Dimension] converts to integer pixels for
// the current display, with metrics memoized per provider. Everything else
// passes through, numerics narrowed by [native.CoerceNumber].
package values
