package fingerprint

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wirepack/errors"
)

// Declaration is the name and version declared for a type.
type Declaration struct {
	Name    string
	Version Version
}

// Registry maps Go types to their declarations. It is populated at startup
// and sealed by the first lookup; declarations after that are rejected.
type Registry struct {
	decls  map[reflect.Type]Declaration
	cache  sync.Map // reflect.Type -> Fingerprint
	mu     sync.RWMutex
	sealed bool
}

// Default is the process-wide registry used by Declare and Of.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{decls: make(map[reflect.Type]Declaration)}
}

// Declare records the name and version of t.
func (r *Registry) Declare(t reflect.Type, name string, v Version) error {
	if t == nil {
		return errors.NilPointer(errors.PhaseRegister, nil, "reflect.Type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.Sealed("type", t.String())
	}
	if _, dup := r.decls[t]; dup {
		return errors.Registration("type", t.String(), errors.InvalidInput(errors.PhaseRegister, "already declared"))
	}
	r.decls[t] = Declaration{Name: name, Version: v}

	Logger().Debug("declared type",
		zap.String("type", t.String()),
		zap.String("name", name),
		zap.String("version", v.String()))
	return nil
}

// Lookup returns the declaration of t, or the zero Declaration if t was
// never declared. It seals the registry.
func (r *Registry) Lookup(t reflect.Type) Declaration {
	r.mu.RLock()
	if r.sealed {
		d := r.decls[t]
		r.mu.RUnlock()
		return d
	}
	r.mu.RUnlock()

	r.mu.Lock()
	r.sealed = true
	d := r.decls[t]
	r.mu.Unlock()
	return d
}

// Describe returns the descriptor of t under its declaration.
func (r *Registry) Describe(t reflect.Type) Descriptor {
	return NewDescriptor(t, r.Lookup(t))
}

// Fingerprint returns the cached fingerprint of t.
func (r *Registry) Fingerprint(t reflect.Type) Fingerprint {
	if f, ok := r.cache.Load(t); ok {
		return f.(Fingerprint)
	}
	d := r.Describe(t)
	f := Compute(d)
	r.cache.Store(t, f)

	Logger().Debug("computed fingerprint",
		zap.String("type", d.Name),
		zap.String("fingerprint", f.String()),
		zap.Uint64("short", f.Short()))
	return f
}

// Sealed reports whether the registry has been read.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Declare records T's name and version in the Default registry.
func Declare[T any](name string, major, minor, revision uint32) error {
	return Default.Declare(reflect.TypeOf((*T)(nil)).Elem(), name, Version{Major: major, Minor: minor, Revision: revision})
}

// Of returns T's fingerprint from the Default registry.
func Of[T any]() Fingerprint {
	return Default.Fingerprint(reflect.TypeOf((*T)(nil)).Elem())
}

// DescriptorOf returns T's descriptor from the Default registry.
func DescriptorOf[T any]() Descriptor {
	return Default.Describe(reflect.TypeOf((*T)(nil)).Elem())
}
