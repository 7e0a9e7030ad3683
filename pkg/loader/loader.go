// Package loader reads declarative menu files (YAML or JSON) and resolves them into
// menu.Config trees, binding operation names through a registry.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
	"github.com/aretw0/promptmenu/pkg/menu"
	"github.com/aretw0/promptmenu/pkg/registry"
)

// Format selects the decoder for menu file contents.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is a resolved menu file.
type File struct {
	Menu     []menu.Config
	Cast     *cast.Chain
	Validate bool
}

// fileDoc represents the structure of menu.yaml
type fileDoc struct {
	Cast     []string `yaml:"cast" json:"cast"`
	Validate bool     `yaml:"validate" json:"validate"`
	Menu     []any    `yaml:"menu" json:"menu"`
}

// nodeDoc is one node entry, decoded from a generic mapping.
type nodeDoc struct {
	Command   string   `mapstructure:"command"`
	Operation string   `mapstructure:"operation"`
	Children  any      `mapstructure:"children"`
	Cast      []string `mapstructure:"cast"`
	Validate  *bool    `mapstructure:"validate"`
}

// FormatFor picks the format from a file extension, defaulting to YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a menu file from disk.
func Load(path string, reg *registry.Registry) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return Parse(data, FormatFor(path), reg)
}

// Parse decodes menu file contents and resolves operations through reg.
func Parse(data []byte, format Format, reg *registry.Registry) (*File, error) {
	var doc fileDoc
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse menu json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse menu yaml: %w", err)
		}
	}

	chain, err := cast.ByName(doc.Cast...)
	if err != nil {
		return nil, &domain.ConfigError{Err: domain.ErrUnknownReference, Detail: err.Error()}
	}

	configs, err := resolveNodes(doc.Menu, reg)
	if err != nil {
		return nil, err
	}
	return &File{Menu: configs, Cast: chain, Validate: doc.Validate}, nil
}

func resolveNodes(items []any, reg *registry.Registry) ([]menu.Config, error) {
	configs := make([]menu.Config, 0, len(items))
	for _, item := range items {
		cfg, err := resolveNode(item, reg)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func resolveNode(item any, reg *registry.Registry) (menu.Config, error) {
	if !isMapping(item) {
		return menu.Config{}, &domain.ConfigError{Err: domain.ErrInvalidChildren, Detail: fmt.Sprintf("node must be a mapping, got %T", item)}
	}

	var doc nodeDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return menu.Config{}, err
	}
	if err := dec.Decode(item); err != nil {
		return menu.Config{}, &domain.ConfigError{Command: commandOf(item), Err: domain.ErrInvalidNode, Detail: err.Error()}
	}

	cfg := menu.Config{Command: doc.Command, Validate: doc.Validate}

	if doc.Operation != "" {
		if reg == nil {
			return menu.Config{}, &domain.ConfigError{Command: doc.Command, Err: domain.ErrUnknownReference, Detail: "no registry for operation " + doc.Operation}
		}
		op, err := reg.Lookup(doc.Operation)
		if err != nil {
			return menu.Config{}, &domain.ConfigError{Command: doc.Command, Err: domain.ErrUnknownReference, Detail: err.Error()}
		}
		cfg.Operation = op
	}

	if doc.Cast != nil {
		chain, err := cast.ByName(doc.Cast...)
		if err != nil {
			return menu.Config{}, &domain.ConfigError{Command: doc.Command, Err: domain.ErrUnknownReference, Detail: err.Error()}
		}
		cfg.Cast = chain
	}

	children, err := resolveChildren(doc.Command, doc.Children, reg)
	if err != nil {
		return menu.Config{}, err
	}
	cfg.Children = children
	return cfg, nil
}

// resolveChildren maps the polymorphic children field onto the menu.Children variant:
// strings become Labels, mappings become Nodes and a bare mapping is an External tree.
func resolveChildren(command string, raw any, reg *registry.Registry) (menu.Children, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any, map[any]any:
		return menu.External{Tree: v}, nil
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		if labels, ok := asLabels(v); ok {
			return labels, nil
		}
		if !allMappings(v) {
			return nil, &domain.ConfigError{Command: command, Err: domain.ErrInvalidChildren}
		}
		nodes, err := resolveNodes(v, reg)
		if err != nil {
			return nil, err
		}
		return menu.Nodes(nodes), nil
	default:
		return nil, &domain.ConfigError{Command: command, Err: domain.ErrInvalidChildren, Detail: fmt.Sprintf("got %T", raw)}
	}
}

func asLabels(items []any) (menu.Labels, bool) {
	labels := make(menu.Labels, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		labels = append(labels, s)
	}
	return labels, true
}

func allMappings(items []any) bool {
	for _, item := range items {
		if !isMapping(item) {
			return false
		}
	}
	return true
}

// commandOf returns the command of a raw node when it is a string.
func commandOf(item any) string {
	var v any
	switch m := item.(type) {
	case map[string]any:
		v = m["command"]
	case map[any]any:
		v = m["command"]
	}
	s, _ := v.(string)
	return s
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[any]any:
		return true
	}
	return false
}
