package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/promptmenu/pkg/domain"
)

// Registry manages the operations that menu files can reference by name.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]*domain.Operation
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops: make(map[string]*domain.Operation),
	}
}

// Register adds an operation under name, after checking its parameter contract.
// If an operation with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn domain.Handler, params ...domain.Parameter) error {
	op := domain.NewOperation(name, fn, params...)
	if err := op.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = op
	return nil
}

// MustRegister is like Register but panics on an invalid contract.
func (r *Registry) MustRegister(name string, fn domain.Handler, params ...domain.Parameter) {
	if err := r.Register(name, fn, params...); err != nil {
		panic(err)
	}
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (*domain.Operation, error) {
	r.mu.RLock()
	op, ok := r.ops[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("operation not found: %s", name)
	}
	return op, nil
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
