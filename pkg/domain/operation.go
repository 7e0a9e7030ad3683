package domain

import "fmt"

// Handler is the function bound to a leaf command.
// args holds the positional values in order, kwargs the keyword arguments by key.
type Handler func(args []any, kwargs map[string]any) (any, error)

// Operation is a handler together with the parameter contract its arguments are checked against.
type Operation struct {
	Name   string
	Params []Parameter
	Call   Handler
}

// NewOperation is a shorthand for building an Operation literal.
func NewOperation(name string, call Handler, params ...Parameter) *Operation {
	return &Operation{Name: name, Params: params, Call: call}
}

// Validate checks the contract is well-formed: a handler is present, parameter names are
// unique and non-empty, kinds are declared in order and at most one of each variadic kind exists.
func (o *Operation) Validate() error {
	if o.Call == nil {
		return fmt.Errorf("%w: operation %q has no handler", ErrInvalidContract, o.Name)
	}

	seen := make(map[string]bool, len(o.Params))
	last := PositionalOnly
	for i, p := range o.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter %d of %q has no name", ErrInvalidContract, i, o.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate parameter %q in %q", ErrInvalidContract, p.Name, o.Name)
		}
		seen[p.Name] = true

		if p.Kind < PositionalOnly || p.Kind > VarKeyword {
			return fmt.Errorf("%w: parameter %q has unknown kind %d", ErrInvalidContract, p.Name, int(p.Kind))
		}
		if p.Kind < last {
			return fmt.Errorf("%w: parameter %q (%s) declared after a %s parameter", ErrInvalidContract, p.Name, p.Kind, last)
		}
		if p.Kind == last && p.Kind.Variadic() {
			return fmt.Errorf("%w: more than one %s parameter in %q", ErrInvalidContract, p.Kind, o.Name)
		}
		last = p.Kind
	}
	return nil
}

// DisplayName is the name used in binding error messages.
func (o *Operation) DisplayName() string {
	if o.Name == "" {
		return "operation"
	}
	return o.Name
}
