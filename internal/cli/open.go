package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/promptmenu"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/loader"
	"github.com/aretw0/promptmenu/pkg/registry"
)

// Options configures how a menu file is opened.
type Options struct {
	MenuPath string
	Registry *registry.Registry // Defaults to Builtins()
	Logger   *slog.Logger
	Hooks    domain.Hooks
}

// OpenMenu loads and builds the menu described by opts.MenuPath.
func OpenMenu(opts Options) (*promptmenu.Menu, error) {
	reg := opts.Registry
	if reg == nil {
		reg = Builtins()
	}

	file, err := loader.Load(opts.MenuPath, reg)
	if err != nil {
		return nil, err
	}

	menuOpts := []promptmenu.Option{
		promptmenu.WithCastChain(file.Cast),
		promptmenu.WithValidation(file.Validate),
		promptmenu.WithHooks(opts.Hooks),
	}
	if opts.Logger != nil {
		menuOpts = append(menuOpts, promptmenu.WithLogger(opts.Logger))
	}

	m, err := promptmenu.New(file.Menu, menuOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid menu %s: %w", opts.MenuPath, err)
	}
	return m, nil
}

// FormatResult renders an operation result for terminal output.
func FormatResult(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	default:
		return fmt.Sprintf("%v", r)
	}
}
