package menu

import (
	"strings"
	"unicode"

	"github.com/aretw0/promptmenu/pkg/binder"
	"github.com/aretw0/promptmenu/pkg/domain"
)

// Process dispatches line to this node.
//
// A leaf parses the whole line, optionally checks it against the operation's contract and
// calls the operation. An internal node consumes one command token and hands the rest of
// the line to the matching child.
func (n *Node) Process(line string) (any, error) {
	result, _, err := n.Dispatch(line)
	return result, err
}

// Dispatch behaves like Process and also returns the commands matched below this node,
// including the ones matched before a failure.
func (n *Node) Dispatch(line string) (any, []string, error) {
	var path []string
	result, err := n.dispatch(line, &path)
	return result, path, err
}

func (n *Node) dispatch(line string, path *[]string) (any, error) {
	if n.op != nil {
		return n.invoke(line)
	}

	if strings.TrimFunc(line, unicode.IsSpace) == "" {
		return nil, domain.NewArgumentError(domain.ErrMoreArgumentsNeeded, "more arguments needed for '%s'", n.command)
	}

	head, rest, _, err := n.parser.Split(line)
	if err != nil {
		return nil, err
	}

	if command, ok := head.(string); ok {
		if child := n.Child(command); child != nil {
			*path = append(*path, child.command)
			return child.dispatch(rest, path)
		}
	}
	return nil, domain.NewArgumentError(domain.ErrSubcommandNotFound, "subcommand not found: %v", head)
}

func (n *Node) invoke(line string) (any, error) {
	values, err := n.parser.Parse(line, true)
	if err != nil {
		return nil, err
	}
	if n.validate {
		if err := binder.Check(n.op, values); err != nil {
			return nil, err
		}
	}
	args, kwargs, err := binder.Split(values)
	if err != nil {
		return nil, err
	}
	return n.op.Call(args, binder.KeywordMap(kwargs))
}
