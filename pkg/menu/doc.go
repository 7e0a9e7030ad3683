/*
Package menu builds the immutable command tree and dispatches command lines through it.

A node is either a leaf bound to a domain.Operation or an internal node whose children are
other nodes. Leaves may carry completion hints (Labels or an External structure) that only
affect CompletionTree.

	root, err := menu.Build("root", []menu.Config{
		{Command: "show", Children: menu.Nodes{
			{Command: "user", Operation: showUser},
		}},
	}, nil, false)

	result, err := root.Process("show user alice")
*/
package menu
