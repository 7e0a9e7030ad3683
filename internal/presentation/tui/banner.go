package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the shell banner to w, colored when w supports it.
func PrintBanner(w io.Writer, menuPath string) {
	out := termenv.NewOutput(w)
	title := out.String("promptmenu").Bold().Foreground(out.Color("#a78bfa"))
	hint := out.String("type a command, 'exit' to leave").Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %s\n", title, menuPath)
	fmt.Fprintf(w, "  %s\n", hint)
	fmt.Fprintln(w)
}

// Error renders msg as an error line for w.
func Error(w io.Writer, msg string) string {
	out := termenv.NewOutput(w)
	return out.String(msg).Foreground(out.Color("#fb7185")).String()
}
