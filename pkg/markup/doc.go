// Package markup parses declarative UI documents into description trees.
//
// Two front-ends are provided: YAML ([ParseYAML]) and HCL ([ParseHCL]).
// Both produce plain [core.Node] trees and share one set of scalar
// conventions, so documents in either syntax mean the same thing:
//
//   - a string starting with ":" is a [core.Symbol] (":align-left");
//   - a string of the form "<number><unit>" with a display unit suffix is
//     a [core.Dimension] ("16dp", "9.5sp");
//   - every other scalar stays a plain string, number, or bool.
//
// The build core never imports this package; front-ends are replaceable
// and hand-built [core.Node] trees are equally valid input.
package markup
