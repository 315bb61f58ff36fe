// Package traits implements the attribute-handler engine of the build
// pipeline. A trait is a named, composable handler that watches the
// attribute map of an element being built, decides whether it applies, and
// — when it does — configures the widget and consumes the attributes it
// handled, so later traits and the generic setter pass never see them.
//
// Which traits are candidates for an element, and in what order, is decided
// by the registry's inheritance-aware trait lists: a subtype's own traits
// run before its ancestors', so the most specific handler gets the first
// chance to consume an attribute. The engine itself dispatches on nothing
// but the trait id.
//
// # Matching
//
// A trait matches in one of three ways, in this precedence:
//
//  1. a custom [MatchFunc], when one is set;
//  2. an explicit attribute list: the trait matches when any listed
//     attribute is present;
//  3. the default: an attribute named after the trait itself is present.
//
// Supplying both a custom predicate and an attribute list is legal: the
// predicate alone decides matching and the list alone decides consumption.
// The engine flags the combination at registration time because the two can
// disagree about which attributes the trait is "about".
//
// A trait that does not match contributes nothing: its body never runs, and
// both of its update functions are identities.
package traits
