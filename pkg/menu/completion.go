package menu

// Completion returns the completion structure of the node's children:
// nil for a leaf without hints, the Labels or External tree of a leaf with hints, and a
// map from child command to the child's completion for an internal node.
func (n *Node) Completion() any {
	switch n.kind {
	case labelChildren:
		return append(Labels(nil), n.labels...)
	case externalChildren:
		return n.external
	case nodeChildren:
		tree := make(map[string]any, len(n.children))
		for _, c := range n.children {
			tree[c.command] = c.Completion()
		}
		return tree
	default:
		return nil
	}
}
