package domain

import "fmt"

// ParamKind describes how a parameter can be bound.
// Kinds are ordered: a contract must declare them in non-decreasing order.
type ParamKind int

const (
	PositionalOnly ParamKind = iota
	PositionalOrKeyword
	VarPositional
	KeywordOnly
	VarKeyword
)

var paramKindNames = map[ParamKind]string{
	PositionalOnly:      "positional_only",
	PositionalOrKeyword: "positional_or_keyword",
	VarPositional:       "var_positional",
	KeywordOnly:         "keyword_only",
	VarKeyword:          "var_keyword",
}

func (k ParamKind) String() string {
	if name, ok := paramKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

// ParseParamKind resolves the textual name of a kind, as used in menu files.
func ParseParamKind(name string) (ParamKind, error) {
	for k, n := range paramKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown parameter kind: %s", name)
}

// Positional reports whether the parameter can consume a positional value.
func (k ParamKind) Positional() bool {
	return k == PositionalOnly || k == PositionalOrKeyword
}

// Variadic reports whether the parameter collects extra arguments.
func (k ParamKind) Variadic() bool {
	return k == VarPositional || k == VarKeyword
}

// Parameter is one entry of an operation's declared contract.
type Parameter struct {
	Name     string    `json:"name" yaml:"name" mapstructure:"name"`
	Kind     ParamKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Required bool      `json:"required" yaml:"required" mapstructure:"required"`
}

// Arg declares a required positional-or-keyword parameter.
func Arg(name string) Parameter {
	return Parameter{Name: name, Kind: PositionalOrKeyword, Required: true}
}

// OptionalArg declares a positional-or-keyword parameter with a default.
func OptionalArg(name string) Parameter {
	return Parameter{Name: name, Kind: PositionalOrKeyword}
}

// PosOnly declares a required positional-only parameter.
func PosOnly(name string) Parameter {
	return Parameter{Name: name, Kind: PositionalOnly, Required: true}
}

// KwOnly declares a keyword-only parameter.
func KwOnly(name string, required bool) Parameter {
	return Parameter{Name: name, Kind: KeywordOnly, Required: required}
}

// VarArgs declares the parameter collecting extra positional values.
func VarArgs(name string) Parameter {
	return Parameter{Name: name, Kind: VarPositional}
}

// VarKwargs declares the parameter collecting extra keyword arguments.
func VarKwargs(name string) Parameter {
	return Parameter{Name: name, Kind: VarKeyword}
}
