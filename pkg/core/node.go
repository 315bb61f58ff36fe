package core

// Node is one element of a UI description tree: an element keyword, the
// attributes to apply, and the child slots in declaration order.
//
// A child slot holds one of:
//   - *Node: a nested element, built recursively;
//   - nil: an absent child, skipped without affecting sibling order;
//   - any other value: passthrough payload handed to the parent unchanged.
type Node struct {
	Keyword    string
	Attributes Attributes
	Children   []any
}

// NewNode builds a node from a keyword, an attribute map, and child slots.
// It is a convenience for hand-written trees; markup front-ends construct
// Node values directly.
func NewNode(keyword string, attrs Attributes, children ...any) *Node {
	return &Node{Keyword: keyword, Attributes: attrs, Children: children}
}

// ChildNodes returns the non-nil *Node children, in order. Passthrough
// payloads are not included.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok && cn != nil {
			out = append(out, cn)
		}
	}
	return out
}
