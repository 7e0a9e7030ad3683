package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/promptmenu"
	"github.com/aretw0/promptmenu/internal/cli"
	"github.com/aretw0/promptmenu/internal/logging"
	"github.com/aretw0/promptmenu/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "promptmenu",
	Short: "promptmenu runs multi-level command menus described in YAML or JSON",
	Long: `promptmenu builds a command tree from a menu file, parses command lines into typed
arguments and dispatches them to the matching operation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("menu", "menu.yaml", "Menu file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); silent when empty")
}

func createLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	if levelName == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// openMenu loads the menu referenced by the persistent flags.
func openMenu(cmd *cobra.Command, hooks domain.Hooks) (*promptmenu.Menu, *slog.Logger, error) {
	logger, err := createLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	path, _ := cmd.Flags().GetString("menu")

	m, err := cli.OpenMenu(cli.Options{MenuPath: path, Logger: logger, Hooks: hooks})
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("menu loaded", "path", path)
	return m, logger, nil
}
