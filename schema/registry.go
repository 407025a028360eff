package schema

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wirepack/errors"
)

// Registry holds explicitly registered object schemas.
type Registry struct {
	objects map[reflect.Type]*Object
	mu      sync.RWMutex
	sealed  bool
}

// Default is the process-wide registry used by Register.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{objects: make(map[reflect.Type]*Object)}
}

// Register records the schema of t.
func (r *Registry) Register(t reflect.Type, members ...Member) error {
	obj, err := New(t, members...)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.Sealed("schema", t.String())
	}
	if _, dup := r.objects[t]; dup {
		return errors.Registration("schema", t.String(), errors.InvalidInput(errors.PhaseRegister, "already registered"))
	}
	r.objects[t] = obj

	Logger().Debug("registered schema",
		zap.String("type", t.String()),
		zap.Int("members", obj.Len()))
	return nil
}

// Lookup returns the registered schema of t. It seals the registry.
func (r *Registry) Lookup(t reflect.Type) (*Object, bool) {
	r.mu.RLock()
	if r.sealed {
		obj, ok := r.objects[t]
		r.mu.RUnlock()
		return obj, ok
	}
	r.mu.RUnlock()

	r.mu.Lock()
	r.sealed = true
	obj, ok := r.objects[t]
	r.mu.Unlock()
	return obj, ok
}

// Resolve returns the registered schema of t, falling back to the schema
// derived from its struct fields.
func (r *Registry) Resolve(t reflect.Type) (*Object, error) {
	if obj, ok := r.Lookup(t); ok {
		return obj, nil
	}
	return FromStruct(t)
}

// Has reports whether t has a registered schema without sealing the registry.
func (r *Registry) Has(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.objects[t]
	return ok
}

// Register records T's schema in the Default registry.
func Register[T any](members ...Member) error {
	return Default.Register(reflect.TypeOf((*T)(nil)).Elem(), members...)
}
