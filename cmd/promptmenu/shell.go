package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/promptmenu/internal/cli"
	"github.com/aretw0/promptmenu/pkg/domain"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read command lines from stdin and dispatch each one",
	Long:  `Starts an interactive session when stdin is a terminal; otherwise processes piped lines quietly.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, logger, err := openMenu(cmd, domain.Hooks{})
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("menu")
		prompt, _ := cmd.Flags().GetString("prompt")

		sh := &cli.Shell{
			Menu:        m,
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			Prompt:      prompt,
			Title:       path,
			Logger:      logger,
		}
		return sh.Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().String("prompt", "> ", "Prompt shown in interactive mode")

	// Make 'shell' the default if no command is provided
	rootCmd.RunE = shellCmd.RunE
	rootCmd.Flags().AddFlagSet(shellCmd.Flags())
}
