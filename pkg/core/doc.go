// Package core provides the data model shared by every stage of a widget
// build: description-tree nodes, attribute maps, parent-to-child options,
// symbolic values, and display-metric dimensions.
//
// # Description Trees
//
// A UI screen is described as a tree of [Node] values. Each node names an
// element keyword (resolved against a registry at build time), carries an
// attribute map, and lists its children. Children may be further nodes, nil
// placeholders (skipped during a build), or arbitrary payload values the
// target toolkit knows how to attach.
//
// # Attributes and Options
//
// [Attributes] flow "into" a single widget: they are merged over the
// registered defaults of the element type, consumed trait by trait, and the
// remainder is applied through setter resolution. [Options] flow "down" the
// tree: a parent publishes context (the kind of container it is, the widget
// registering descendant ids) that its subtree can read. Options never travel
// upward or sideways; every node hands its children a fresh copy.
//
// # Symbols and Dimensions
//
// A [Symbol] is a named constant that has not been resolved yet, such as the
// alignment keyword in `text-align: :center`. A [Dimension] is a magnitude
// with a display unit, such as 16dp, converted to raw pixels against
// [DisplayMetrics] during value resolution.
package core
