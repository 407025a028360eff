package fingerprint

import (
	"io"
	"reflect"
	"runtime"
)

var closerType = reflect.TypeOf((*io.Closer)(nil)).Elem()

// Derive computes the structural properties of t.
func Derive(t reflect.Type) Properties {
	flat := pointerFree(t)
	iface := t.Kind() == reflect.Interface

	return Properties{
		Trivial:                       flat,
		StandardLayout:                standardLayout(t),
		DefaultConstructible:          !iface,
		TriviallyDefaultConstructible: flat,
		NothrowDefaultConstructible:   !iface,
		TriviallyCopyable:             flat,
		MoveConstructible:             !iface,
		TriviallyMoveConstructible:    flat,
		NothrowMoveConstructible:      !iface,
		Destructible:                  !iface,
		TriviallyDestructible:         flat,
		NothrowDestructible:           !iface,
		UniqueObjectRepresentations:   uniqueRepresentation(t),
		Polymorphic:                   iface,
		VirtualDestructor:             t.Implements(closerType),
		Aggregate:                     t.Kind() == reflect.Struct || t.Kind() == reflect.Array,
	}
}

// NewDescriptor builds the descriptor of t under the given declaration,
// tagged with the running compiler.
func NewDescriptor(t reflect.Type, decl Declaration) Descriptor {
	name := decl.Name
	if name == "" {
		name = t.String()
	}
	return Descriptor{
		Name:       name,
		Size:       uint64(t.Size()),
		Version:    decl.Version,
		Properties: Derive(t),
		Compiler:   runtime.Compiler,
	}
}

// pointerFree reports whether values of t hold no references.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func standardLayout(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return standardLayout(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous || !standardLayout(f.Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// uniqueRepresentation reports whether equal values of t always have equal
// bytes: integers and bools, and compositions of them without padding.
func uniqueRepresentation(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Array:
		return uniqueRepresentation(t.Elem())
	case reflect.Struct:
		var sum uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !uniqueRepresentation(f.Type) {
				return false
			}
			sum += f.Type.Size()
		}
		return sum == t.Size()
	default:
		return false
	}
}
