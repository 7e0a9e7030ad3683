package menu

import (
	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/parser"
)

type childKind int

const (
	noChildren childKind = iota
	labelChildren
	externalChildren
	nodeChildren
)

// Node is one built, immutable node of the menu tree.
type Node struct {
	command  string
	op       *domain.Operation
	kind     childKind
	labels   Labels
	external any
	children []*Node
	parser   *parser.Parser
	validate bool
}

// Build creates an internal node named command whose children are built from configs.
// chain and validate are the defaults inherited by every descendant that does not override them.
func Build(command string, configs []Config, chain *cast.Chain, validate bool) (*Node, error) {
	if len(configs) == 0 {
		return nil, &domain.ConfigError{Command: command, Err: domain.ErrEmptyMenu}
	}
	return newNode(Config{Command: command, Children: Nodes(configs)}, chain, validate)
}

func newNode(cfg Config, chain *cast.Chain, validate bool) (*Node, error) {
	if cfg.Command == "" {
		return nil, &domain.ConfigError{Err: domain.ErrEmptyCommand}
	}
	if cfg.Cast != nil {
		chain = cfg.Cast
	}
	if cfg.Validate != nil {
		validate = *cfg.Validate
	}

	n := &Node{
		command:  cfg.Command,
		op:       cfg.Operation,
		parser:   parser.New(chain),
		validate: validate,
	}

	if n.op != nil {
		if err := n.op.Validate(); err != nil {
			return nil, &domain.ConfigError{Command: n.command, Err: domain.ErrInvalidContract, Detail: err.Error()}
		}
		if err := n.setLeafChildren(cfg.Children); err != nil {
			return nil, err
		}
		return n, nil
	}
	if err := n.setChildNodes(cfg.Children, chain, validate); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) setLeafChildren(children Children) error {
	switch c := children.(type) {
	case nil:
	case Labels:
		if len(c) > 0 {
			n.kind = labelChildren
			n.labels = dedupe(c)
		}
	case External:
		n.kind = externalChildren
		n.external = c.Tree
	case Nodes:
		if len(c) > 0 {
			return &domain.ConfigError{Command: n.command, Err: domain.ErrOperationWithChildren}
		}
	}
	return nil
}

func (n *Node) setChildNodes(children Children, chain *cast.Chain, validate bool) error {
	switch c := children.(type) {
	case Labels:
		if len(c) > 0 {
			return &domain.ConfigError{Command: n.command, Err: domain.ErrLabelsRequireOperation}
		}
	case External:
		return &domain.ConfigError{Command: n.command, Err: domain.ErrLabelsRequireOperation}
	case Nodes:
		if len(c) == 0 {
			break
		}
		seen := make(map[string]bool, len(c))
		for _, childCfg := range c {
			if seen[childCfg.Command] {
				return &domain.ConfigError{Command: n.command, Err: domain.ErrDuplicateCommand, Detail: childCfg.Command}
			}
			seen[childCfg.Command] = true

			child, err := newNode(childCfg, chain, validate)
			if err != nil {
				return err
			}
			n.children = append(n.children, child)
		}
		n.kind = nodeChildren
		return nil
	}
	return &domain.ConfigError{Command: n.command, Err: domain.ErrLeafRequiresOperation}
}

func dedupe(labels Labels) Labels {
	seen := make(map[string]bool, len(labels))
	out := make(Labels, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Command returns the node's command name.
func (n *Node) Command() string { return n.command }

// Operation returns the bound operation, nil for internal nodes.
func (n *Node) Operation() *domain.Operation { return n.op }

// IsLeaf reports whether the node is bound to an operation.
func (n *Node) IsLeaf() bool { return n.op != nil }

// Validates reports whether arguments are checked before the operation is called.
func (n *Node) Validates() bool { return n.validate }

// Children returns the child nodes of an internal node.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Child returns the child with the given command, or nil.
func (n *Node) Child(command string) *Node {
	for _, c := range n.children {
		if c.command == command {
			return c
		}
	}
	return nil
}
