package types

type Kind uint8

const (
	KindBool Kind = iota
	KindS8
	KindS16
	KindS32
	KindS64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindC64
	KindC128
	KindString
	KindFunc
	KindArray
	KindList
	KindMap
	KindOption
	KindObject
	KindDynamic
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindS8:      "s8",
	KindS16:     "s16",
	KindS32:     "s32",
	KindS64:     "s64",
	KindU8:      "u8",
	KindU16:     "u16",
	KindU32:     "u32",
	KindU64:     "u64",
	KindF32:     "f32",
	KindF64:     "f64",
	KindC64:     "c64",
	KindC128:    "c128",
	KindString:  "string",
	KindFunc:    "func",
	KindArray:   "array",
	KindList:    "list",
	KindMap:     "map",
	KindOption:  "option",
	KindObject:  "object",
	KindDynamic: "dynamic",
}

var kindWidths = [...]int{
	KindBool: 1,
	KindS8:   1,
	KindS16:  2,
	KindS32:  4,
	KindS64:  8,
	KindU8:   1,
	KindU16:  2,
	KindU32:  4,
	KindU64:  8,
	KindF32:  4,
	KindF64:  8,
	KindC64:  8,
	KindC128: 16,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is bool or a fixed-width scalar.
func (k Kind) IsPrimitive() bool {
	return k <= KindC128
}

// Width returns the encoded byte width of a primitive kind, or 0.
func (k Kind) Width() int {
	if k.IsPrimitive() {
		return kindWidths[k]
	}
	return 0
}

func (k Kind) IsSigned() bool {
	return k >= KindS8 && k <= KindS64
}

func (k Kind) IsUnsigned() bool {
	return k >= KindU8 && k <= KindU64
}

// Category is the value category that decides how a kind is encoded.
type Category uint8

const (
	CategoryBool Category = iota
	CategoryScalar
	CategoryString
	CategoryFunc
	CategorySequence
	CategoryMap
	CategoryNullable
	CategoryObject
	CategoryDynamic
)

var categoryNames = [...]string{
	CategoryBool:     "bool",
	CategoryScalar:   "scalar",
	CategoryString:   "string",
	CategoryFunc:     "func",
	CategorySequence: "sequence",
	CategoryMap:      "map",
	CategoryNullable: "nullable",
	CategoryObject:   "object",
	CategoryDynamic:  "dynamic",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

func (k Kind) Category() Category {
	switch {
	case k == KindBool:
		return CategoryBool
	case k.IsPrimitive():
		return CategoryScalar
	}
	switch k {
	case KindString:
		return CategoryString
	case KindFunc:
		return CategoryFunc
	case KindArray, KindList:
		return CategorySequence
	case KindMap:
		return CategoryMap
	case KindOption:
		return CategoryNullable
	case KindObject:
		return CategoryObject
	default:
		return CategoryDynamic
	}
}
