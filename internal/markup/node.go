package markup

// Node is a generic labeled tree node: a local tag name, an attribute
// map with unique keys, and an ordered child list.
//
// Nodes are immutable once parsed. The interpreter borrows the tree
// read-only and produces output records with no back-references into
// it, so the whole tree can be discarded after event extraction.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns all direct children with the given tag,
// in document order.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first node with the given tag in a depth-first
// pre-order walk of the subtree rooted at n (including n itself),
// or nil if no such node exists.
func (n *Node) Find(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}
