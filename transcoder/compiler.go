package transcoder

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wirepack/errors"
	"github.com/wippyai/wirepack/schema"
)

// Compiler resolves Go types to compiled wire shapes and caches them.
// It is safe for concurrent use.
type Compiler struct {
	schemas *schema.Registry
	cache   sync.Map // reflect.Type -> *CompiledType
}

func NewCompiler() *Compiler {
	return NewCompilerWithRegistry(schema.Default)
}

// NewCompilerWithRegistry compiles objects against the given schema registry.
// The first compilation seals the registry.
func NewCompilerWithRegistry(r *schema.Registry) *Compiler {
	return &Compiler{schemas: r}
}

func (c *Compiler) Compile(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}

	pending := make(map[reflect.Type]*CompiledType)
	ct, err := c.compile(goType, pending, nil)
	if err != nil {
		return nil, err
	}

	// Publish every type compiled along the way; a concurrent compile of the
	// same type may have won, in which case its result is equivalent.
	for t, p := range pending {
		c.cache.LoadOrStore(t, p)
	}
	actual, _ := c.cache.Load(goType)

	Logger().Debug("compiled type",
		zap.String("type", goType.String()),
		zap.Stringer("kind", ct.Kind),
		zap.Int("types", len(pending)))
	return actual.(*CompiledType), nil
}

func (c *Compiler) compile(goType reflect.Type, pending map[reflect.Type]*CompiledType, path []string) (*CompiledType, error) {
	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}
	// Recursive types reference the entry under construction.
	if ct, ok := pending[goType]; ok {
		return ct, nil
	}

	if obj, ok := c.schemas.Lookup(goType); ok {
		return c.compileObject(obj, goType, pending, path)
	}

	switch goType.Kind() {
	case reflect.Bool:
		return c.compilePrimitive(KindBool, goType, pending), nil
	case reflect.Int8:
		return c.compilePrimitive(KindS8, goType, pending), nil
	case reflect.Int16:
		return c.compilePrimitive(KindS16, goType, pending), nil
	case reflect.Int32:
		return c.compilePrimitive(KindS32, goType, pending), nil
	case reflect.Int64, reflect.Int:
		return c.compilePrimitive(KindS64, goType, pending), nil
	case reflect.Uint8:
		return c.compilePrimitive(KindU8, goType, pending), nil
	case reflect.Uint16:
		return c.compilePrimitive(KindU16, goType, pending), nil
	case reflect.Uint32:
		return c.compilePrimitive(KindU32, goType, pending), nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return c.compilePrimitive(KindU64, goType, pending), nil
	case reflect.Float32:
		return c.compilePrimitive(KindF32, goType, pending), nil
	case reflect.Float64:
		return c.compilePrimitive(KindF64, goType, pending), nil
	case reflect.Complex64:
		return c.compilePrimitive(KindC64, goType, pending), nil
	case reflect.Complex128:
		return c.compilePrimitive(KindC128, goType, pending), nil
	case reflect.String:
		return c.compilePrimitive(KindString, goType, pending), nil
	case reflect.Func:
		return c.compilePrimitive(KindFunc, goType, pending), nil
	case reflect.Interface:
		return c.compilePrimitive(KindDynamic, goType, pending), nil
	case reflect.Array:
		return c.compileSequence(KindArray, goType, pending, path)
	case reflect.Slice:
		return c.compileSequence(KindList, goType, pending, path)
	case reflect.Map:
		return c.compileMap(goType, pending, path)
	case reflect.Pointer:
		return c.compileOption(goType, pending, path)
	case reflect.Struct:
		obj, err := schema.FromStruct(goType)
		if err != nil {
			return nil, err
		}
		return c.compileObject(obj, goType, pending, path)
	default:
		return nil, errors.UnsupportedType(errors.PhaseCompile, path, goType.String())
	}
}

func (c *Compiler) compilePrimitive(kind TypeKind, goType reflect.Type, pending map[reflect.Type]*CompiledType) *CompiledType {
	ct := &CompiledType{
		GoType: goType,
		Kind:   kind,
	}
	pending[goType] = ct
	return ct
}

func (c *Compiler) compileSequence(kind TypeKind, goType reflect.Type, pending map[reflect.Type]*CompiledType, path []string) (*CompiledType, error) {
	ct := &CompiledType{
		GoType: goType,
		Kind:   kind,
	}
	if kind == KindArray {
		ct.Len = goType.Len()
	}
	pending[goType] = ct

	elemPath := append(append([]string{}, path...), "[elem]")
	elemType, err := c.compile(goType.Elem(), pending, elemPath)
	if err != nil {
		return nil, err
	}
	ct.ElemType = elemType
	return ct, nil
}

func (c *Compiler) compileMap(goType reflect.Type, pending map[reflect.Type]*CompiledType, path []string) (*CompiledType, error) {
	ct := &CompiledType{
		GoType: goType,
		Kind:   KindMap,
	}
	pending[goType] = ct

	keyPath := append(append([]string{}, path...), "[key]")
	keyType, err := c.compile(goType.Key(), pending, keyPath)
	if err != nil {
		return nil, err
	}

	valuePath := append(append([]string{}, path...), "[value]")
	valueType, err := c.compile(goType.Elem(), pending, valuePath)
	if err != nil {
		return nil, err
	}

	ct.KeyType = keyType
	ct.ElemType = valueType
	return ct, nil
}

func (c *Compiler) compileOption(goType reflect.Type, pending map[reflect.Type]*CompiledType, path []string) (*CompiledType, error) {
	ct := &CompiledType{
		GoType: goType,
		Kind:   KindOption,
	}
	pending[goType] = ct

	elemPath := append(append([]string{}, path...), "[some]")
	elemType, err := c.compile(goType.Elem(), pending, elemPath)
	if err != nil {
		return nil, err
	}
	ct.ElemType = elemType
	return ct, nil
}

func (c *Compiler) compileObject(obj *schema.Object, goType reflect.Type, pending map[reflect.Type]*CompiledType, path []string) (*CompiledType, error) {
	ct := &CompiledType{
		GoType: goType,
		Kind:   KindObject,
		Object: obj,
	}
	pending[goType] = ct

	fields := make([]CompiledField, 0, len(obj.Members))
	for _, m := range obj.Members {
		fieldPath := append(append([]string{}, path...), m.Name)
		fieldType, err := c.compile(m.Type, pending, fieldPath)
		if err != nil {
			return nil, err
		}
		fields = append(fields, CompiledField{
			Type:   fieldType,
			Member: m,
		})
	}
	ct.Fields = fields
	return ct, nil
}
