package cast

import (
	"fmt"
	"strings"
)

// Caster transforms a single token.
// The input is a raw string or the output of a previous Caster.
type Caster interface {
	Cast(v any) (any, error)
}

// CasterFunc adapts a plain function to the Caster interface.
type CasterFunc func(v any) (any, error)

func (f CasterFunc) Cast(v any) (any, error) { return f(v) }

// Chain is an ordered, immutable list of casters.
type Chain struct {
	steps []Caster
}

// NewChain creates a chain applying steps in the given order.
func NewChain(steps ...Caster) *Chain {
	return &Chain{steps: append([]Caster(nil), steps...)}
}

// Identity returns a chain that leaves tokens unchanged.
func Identity() *Chain {
	return &Chain{}
}

// Apply runs every caster on v in order.
func (c *Chain) Apply(v any) (any, error) {
	if c == nil {
		return v, nil
	}
	var err error
	for _, step := range c.steps {
		v, err = step.Cast(v)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Len returns the number of casters in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.steps)
}

var named = map[string]Caster{
	"keyword": Keyword{},
	"numeric": Numeric{},
}

// ByName builds a chain from caster names, as written in menu files.
// "identity" is accepted and contributes no step.
func ByName(names ...string) (*Chain, error) {
	steps := make([]Caster, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "identity" {
			continue
		}
		c, ok := named[key]
		if !ok {
			return nil, fmt.Errorf("unknown caster: %s", name)
		}
		steps = append(steps, c)
	}
	return NewChain(steps...), nil
}
