package promptmenu

import (
	"log/slog"
	"time"

	"github.com/aretw0/promptmenu/internal/logging"
	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/menu"
)

// RootCommand is the name of the implicit node wrapping the top-level configuration.
const RootCommand = "root"

// Menu is the high-level entry point of the library.
// It wraps the root node of a built tree and is safe for concurrent use as long as the
// bound operations are.
type Menu struct {
	root     *menu.Node
	chain    *cast.Chain
	validate bool
	hooks    domain.Hooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Menu.
type Option func(*Menu)

// WithCastChain sets the cast chain inherited by every node (default: identity).
func WithCastChain(chain *cast.Chain) Option {
	return func(m *Menu) {
		m.chain = chain
	}
}

// WithValidation sets whether leaves check arguments against their contract (default: false).
func WithValidation(validate bool) Option {
	return func(m *Menu) {
		m.validate = validate
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(m *Menu) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger. The menu is silent without one.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New builds a menu from configs. Any schema violation is returned as a *domain.ConfigError.
func New(configs []menu.Config, opts ...Option) (*Menu, error) {
	m := &Menu{
		chain:  cast.Identity(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	root, err := menu.Build(RootCommand, configs, m.chain, m.validate)
	if err != nil {
		return nil, err
	}
	m.root = root
	return m, nil
}

// Run dispatches a command line and returns the operation's result.
// Dispatch failures are *domain.ArgumentError; operation errors are returned unchanged.
func (m *Menu) Run(line string) (any, error) {
	start := time.Now()
	result, path, err := m.root.Dispatch(line)

	if m.hooks.OnDispatch != nil {
		m.hooks.OnDispatch(&domain.DispatchEvent{
			Line:     line,
			Path:     path,
			Duration: time.Since(start),
			Err:      err,
		})
	}
	if err != nil {
		m.logger.Debug("dispatch failed", "line", line, "path", path, "error", err)
		return nil, err
	}
	m.logger.Debug("dispatched", "line", line, "path", path)
	return result, nil
}

// CompletionTree returns the nested completion structure of the menu:
// a map from command to its children's completion, with nil for leaves without hints.
func (m *Menu) CompletionTree() map[string]any {
	tree, _ := m.root.Completion().(map[string]any)
	return tree
}

// Root returns the root node of the menu tree.
func (m *Menu) Root() *menu.Node {
	return m.root
}
