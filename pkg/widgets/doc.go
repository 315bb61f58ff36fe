// Package widgets is a reference widget set for the build pipeline: a
// small, headless toolkit whose element hierarchy, traits, value tables,
// and constant tables exercise every part of the machinery end to end.
//
// It is what the showcase and the test suites build against, and it
// doubles as the worked example for binding a real toolkit: [Register]
// shows the full wiring — descriptors with inheritance, default
// attributes, a color symbol table, value namespaces for alignment and
// orientation attributes, constructor overloads, and the toolkit traits.
// Nothing in the build core depends on this package.
package widgets
