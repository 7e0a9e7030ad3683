package dsl

import (
	"fmt"

	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/menu"
)

// Builder manages the menu construction.
type Builder struct {
	roots []*NodeBuilder
}

// New creates a new menu builder.
func New() *Builder {
	return &Builder{}
}

// Add creates a new top-level command.
// If the command already exists, it returns the existing builder.
func (b *Builder) Add(command string) *NodeBuilder {
	return addTo(&b.roots, command)
}

// Build returns the configurations of every top-level command, in insertion order.
func (b *Builder) Build() ([]menu.Config, error) {
	configs, err := buildAll(b.roots)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}
	return configs, nil
}

// Menu builds the configuration into a runnable tree rooted at an implicit "root" node.
func (b *Builder) Menu(chain *cast.Chain, validate bool) (*menu.Node, error) {
	configs, err := b.Build()
	if err != nil {
		return nil, err
	}
	root, err := menu.Build("root", configs, chain, validate)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}
	return root, nil
}

func addTo(list *[]*NodeBuilder, command string) *NodeBuilder {
	for _, nb := range *list {
		if nb.cfg.Command == command {
			return nb
		}
	}
	nb := &NodeBuilder{cfg: menu.Config{Command: command}}
	*list = append(*list, nb)
	return nb
}

func buildAll(list []*NodeBuilder) ([]menu.Config, error) {
	configs := make([]menu.Config, 0, len(list))
	for _, nb := range list {
		cfg, err := nb.Build()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// handler adapts the short handler signatures accepted by Do.
func handler(fn any) (domain.Handler, error) {
	switch f := fn.(type) {
	case domain.Handler:
		return f, nil
	case func(args []any, kwargs map[string]any) (any, error):
		return f, nil
	case func(args []any) (any, error):
		return func(args []any, _ map[string]any) (any, error) { return f(args) }, nil
	case func() (any, error):
		return func([]any, map[string]any) (any, error) { return f() }, nil
	default:
		return nil, fmt.Errorf("got %T", fn)
	}
}
