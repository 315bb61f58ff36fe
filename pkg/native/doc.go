// Package native defines the contract between the build pipeline and a
// concrete widget toolkit, together with a reflection-backed default
// implementation.
//
// The build core never constructs or configures widgets directly. It asks a
// [Toolkit] to construct an instance of a resolved type, to produce a setter
// for an attribute, to look up a named constant, to convert a dimension for
// the current display, and to attach children. Any object model can sit
// behind the interface: an in-process widget set, a remote view server, or
// a recording fake in tests.
//
// # ReflectToolkit
//
// [ReflectToolkit] implements the contract for ordinary Go widget types. It
// combines registered tables (constructors, setters, constants, validated at
// registration time) with method reflection over Set* setters, so toolkits
// can start with zero registration and tighten into explicit tables — or
// have them generated — as they grow.
package native
