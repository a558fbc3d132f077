package schema

import (
	"fmt"
	"maps"
	"sync"

	"github.com/signadot/runtype"
)

// Registry holds named runtime types which schemas may refer to, by
// IrreducibleType or GenericType name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]runtype.Type
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]runtype.Type)}
}

// Builtins returns a new registry holding the irreducible types.
func Builtins() *Registry {
	r := NewRegistry()
	for name, t := range runtype.Irreducibles() {
		r.types[name] = t
	}
	return r
}

// Register registers t under name.
func (r *Registry) Register(name string, t runtype.Type) error {
	if t == nil {
		return fmt.Errorf("%w: cannot register nil type", ErrRegistration)
	}
	if name == "" {
		return fmt.Errorf("%w: type must have a name", ErrRegistration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return fmt.Errorf("%w: type %q already registered", ErrRegistration, name)
	}

	r.types[name] = t
	return nil
}

// Lookup looks up a type by name, returning nil if there is none.
func (r *Registry) Lookup(name string) runtype.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[name]
}

// All returns a copy of the registered types.
func (r *Registry) All() map[string]runtype.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.types)
}
