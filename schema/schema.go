package schema

import (
	"reflect"

	"github.com/wippyai/wirepack/errors"
)

// TagName is the struct tag consulted by FromStruct.
const TagName = "wire"

// Member is one declared (index, accessor) pair of an object.
type Member struct {
	Type   reflect.Type
	owner  reflect.Type
	access func(obj reflect.Value) reflect.Value
	Name   string
	Index  int
}

// Value returns the member of obj. obj must be an addressable value of the
// owning type; the result is settable when the member is writable. An
// accessor that returns a nil pointer yields the zero Value.
func (m Member) Value(obj reflect.Value) reflect.Value {
	return m.access(obj)
}

// Field declares a member through an accessor returning a pointer to it.
func Field[T, F any](name string, get func(*T) *F) Member {
	return Member{
		Name:  name,
		Type:  reflect.TypeOf((*F)(nil)).Elem(),
		owner: reflect.TypeOf((*T)(nil)).Elem(),
		access: func(obj reflect.Value) reflect.Value {
			return reflect.ValueOf(get(obj.Addr().Interface().(*T))).Elem()
		},
	}
}

// Object is the schema of a reflected object type.
type Object struct {
	Type    reflect.Type
	Members []Member
}

// Len returns the member count.
func (o *Object) Len() int {
	return len(o.Members)
}

// Member returns the member with wire tag idx.
func (o *Object) Member(idx uint64) (Member, bool) {
	if idx >= uint64(len(o.Members)) {
		return Member{}, false
	}
	return o.Members[idx], true
}

// New builds an object schema from members, assigning indexes in order.
func New(t reflect.Type, members ...Member) (*Object, error) {
	if t == nil {
		return nil, errors.NilPointer(errors.PhaseRegister, nil, "reflect.Type")
	}
	seen := make(map[string]struct{}, len(members))
	obj := &Object{Type: t, Members: make([]Member, len(members))}
	for i, m := range members {
		path := []string{t.String(), m.Name}
		if m.access == nil || m.Type == nil {
			return nil, errors.New(errors.PhaseRegister, errors.KindInvalidInput).
				Path(path...).
				Detail("member %d has no accessor", i).
				Build()
		}
		if m.owner != nil && m.owner != t {
			return nil, errors.TypeMismatch(errors.PhaseRegister, path, m.owner.String(), t.String())
		}
		if _, dup := seen[m.Name]; dup {
			return nil, errors.New(errors.PhaseRegister, errors.KindInvalidInput).
				Path(path...).
				Detail("duplicate member name %q", m.Name).
				Build()
		}
		seen[m.Name] = struct{}{}
		m.Index = i
		obj.Members[i] = m
	}
	return obj, nil
}

// FromStruct derives the schema of a struct type from its exported fields.
func FromStruct(t reflect.Type) (*Object, error) {
	if t == nil || t.Kind() != reflect.Struct {
		name := "<nil>"
		if t != nil {
			name = t.String()
		}
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, name, "struct")
	}

	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get(TagName); tag != "" {
			if tag == "-" {
				continue
			}
			name = tag
		}
		members = append(members, structMember(f, i, name))
	}
	return New(t, members...)
}

func structMember(f reflect.StructField, i int, name string) Member {
	return Member{
		Name: name,
		Type: f.Type,
		access: func(obj reflect.Value) reflect.Value {
			return obj.Field(i)
		},
	}
}
