package transcoder

import (
	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/transcoder/internal/types"
)

type Sink = wirepack.Sink

type TypeKind = types.Kind

const (
	KindBool    = types.KindBool
	KindS8      = types.KindS8
	KindS16     = types.KindS16
	KindS32     = types.KindS32
	KindS64     = types.KindS64
	KindU8      = types.KindU8
	KindU16     = types.KindU16
	KindU32     = types.KindU32
	KindU64     = types.KindU64
	KindF32     = types.KindF32
	KindF64     = types.KindF64
	KindC64     = types.KindC64
	KindC128    = types.KindC128
	KindString  = types.KindString
	KindFunc    = types.KindFunc
	KindArray   = types.KindArray
	KindList    = types.KindList
	KindMap     = types.KindMap
	KindOption  = types.KindOption
	KindObject  = types.KindObject
	KindDynamic = types.KindDynamic
)

type Category = types.Category

const (
	CategoryBool     = types.CategoryBool
	CategoryScalar   = types.CategoryScalar
	CategoryString   = types.CategoryString
	CategoryFunc     = types.CategoryFunc
	CategorySequence = types.CategorySequence
	CategoryMap      = types.CategoryMap
	CategoryNullable = types.CategoryNullable
	CategoryObject   = types.CategoryObject
	CategoryDynamic  = types.CategoryDynamic
)

type CompiledType = types.CompiledType
type CompiledField = types.Field
