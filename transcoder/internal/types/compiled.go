package types

import (
	"reflect"

	"github.com/wippyai/wirepack/schema"
)

type CompiledType struct {
	GoType   reflect.Type
	ElemType *CompiledType
	KeyType  *CompiledType
	Object   *schema.Object
	Fields   []Field
	Len      int
	Kind     Kind
}

type Field struct {
	Type   *CompiledType
	Member schema.Member
}

func (ct *CompiledType) IsPrimitive() bool {
	return ct.Kind.IsPrimitive()
}

func (ct *CompiledType) Category() Category {
	return ct.Kind.Category()
}

// MinSize returns the fewest bytes any encoding of the type occupies.
// Decoders use it to reject counts the remaining input cannot satisfy.
func (ct *CompiledType) MinSize() int {
	switch ct.Kind {
	case KindFunc:
		return 0
	case KindArray:
		return ct.Len * ct.ElemType.MinSize()
	default:
		if w := ct.Kind.Width(); w > 0 {
			return w
		}
		return 1
	}
}

// IsFixed reports whether every value of the type encodes to the same
// number of bytes.
func (ct *CompiledType) IsFixed() bool {
	switch ct.Kind {
	case KindFunc:
		return true
	case KindArray:
		return ct.ElemType.IsFixed()
	default:
		return ct.IsPrimitive()
	}
}
