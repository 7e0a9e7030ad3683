package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/promptmenu"
	"github.com/aretw0/promptmenu/internal/presentation/tui"
)

// Shell reads command lines and dispatches each one against a menu.
type Shell struct {
	Menu        *promptmenu.Menu
	In          io.Reader
	Out         io.Writer
	Interactive bool   // print the banner and a prompt before each line
	Prompt      string // defaults to "> "
	Title       string
	Logger      *slog.Logger
}

// Run processes lines until EOF or an exit command. Dispatch errors are printed and the
// loop continues; only read errors are returned.
func (s *Shell) Run() error {
	prompt := s.Prompt
	if prompt == "" {
		prompt = "> "
	}
	if s.Interactive {
		tui.PrintBanner(s.Out, s.Title)
	}

	scanner := bufio.NewScanner(s.In)
	for {
		if s.Interactive {
			fmt.Fprint(s.Out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		result, err := s.Menu.Run(line)
		if err != nil {
			fmt.Fprintln(s.Out, tui.Error(s.Out, "Error: "+err.Error()))
			continue
		}
		if out := FormatResult(result); out != "" {
			fmt.Fprintln(s.Out, out)
		}
	}

	if err := scanner.Err(); err != nil {
		if s.Logger != nil {
			s.Logger.Error("failed to read input", "error", err)
		}
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
