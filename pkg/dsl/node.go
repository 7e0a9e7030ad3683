package dsl

import (
	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/menu"
)

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	cfg      menu.Config
	children []*NodeBuilder
	err      error
}

// Do binds an operation to the node, making it a leaf.
// fn is a domain.Handler or one of the shorter forms func(args []any) (any, error) and
// func() (any, error). An unsupported fn is reported by Builder.Build.
func (n *NodeBuilder) Do(name string, fn any, params ...domain.Parameter) *NodeBuilder {
	h, err := handler(fn)
	if err != nil {
		n.err = &domain.ConfigError{Command: n.cfg.Command, Err: domain.ErrUnsupportedHandler, Detail: err.Error()}
		return n
	}
	n.cfg.Operation = domain.NewOperation(name, h, params...)
	return n
}

// Operation binds an existing operation to the node.
func (n *NodeBuilder) Operation(op *domain.Operation) *NodeBuilder {
	n.cfg.Operation = op
	return n
}

// Labels sets the completion words of a leaf.
func (n *NodeBuilder) Labels(labels ...string) *NodeBuilder {
	n.cfg.Children = menu.Labels(labels)
	return n
}

// Complete sets an external completion structure for a leaf.
func (n *NodeBuilder) Complete(tree any) *NodeBuilder {
	n.cfg.Children = menu.External{Tree: tree}
	return n
}

// Sub adds (or returns the existing) child command of an internal node.
func (n *NodeBuilder) Sub(command string) *NodeBuilder {
	return addTo(&n.children, command)
}

// Cast overrides the cast chain for this node and its descendants.
func (n *NodeBuilder) Cast(steps ...cast.Caster) *NodeBuilder {
	n.cfg.Cast = cast.NewChain(steps...)
	return n
}

// Validate overrides argument validation for this node and its descendants.
func (n *NodeBuilder) Validate(enabled bool) *NodeBuilder {
	n.cfg.Validate = menu.Bool(enabled)
	return n
}

// Build returns the node's configuration, or the first error recorded on it or its
// sub commands.
// Sub commands take precedence over Labels or Complete hints.
func (n *NodeBuilder) Build() (menu.Config, error) {
	if n.err != nil {
		return menu.Config{}, n.err
	}
	cfg := n.cfg
	if len(n.children) > 0 {
		children, err := buildAll(n.children)
		if err != nil {
			return menu.Config{}, err
		}
		cfg.Children = menu.Nodes(children)
	}
	return cfg, nil
}
