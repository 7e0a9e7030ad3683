package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuFile = `
cast: [keyword, numeric]
validate: true
menu:
  - command: greet
    operation: greet
    children: [alice, bob]
  - command: math
    children:
      - command: sum
        operation: sum
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(menuFile), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{args[0], "--menu", path}, args[1:]...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "greet", "alice", "--greeting=Hi")
	require.NoError(t, err)
	assert.Equal(t, "Hi, alice!\n", out)

	out, err = execute(t, "run", "math", "sum", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	_, err = execute(t, "run", "math")
	assert.Error(t, err)
}

func TestCompleteCommand(t *testing.T) {
	out, err := execute(t, "complete", "--json")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, map[string]any{
		"greet": []any{"alice", "bob"},
		"math":  map[string]any{"sum": nil},
	}, tree)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Menu is valid")
}

func TestRunCommand_Metrics(t *testing.T) {
	t.Cleanup(func() { _ = runCmd.Flags().Set("metrics", "false") })

	out, err := execute(t, "run", "--metrics", "math", "sum", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "3\n")
	assert.Contains(t, out, `promptmenu_dispatch_total{outcome="ok",path="math sum"} 1`)

	out, err = execute(t, "run", "--metrics", "math", "nope")
	require.Error(t, err)
	assert.Contains(t, out, `promptmenu_dispatch_total{outcome="invalid_argument",path="math"} 1`)
}
