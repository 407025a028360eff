package transcoder

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"io"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/ccoveille/go-safecast"
	"github.com/valyala/bytebufferpool"

	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/errors"
	"github.com/wippyai/wirepack/varint"
)

// MaxDepth bounds container nesting on encode and decode. Cyclic values
// such as a pointer to itself fail with an overflow error at this depth.
const MaxDepth = 1000

// Encoder writes Go values in the binary wire format.
// It keeps scratch space and is not safe for concurrent use.
type Encoder struct {
	compiler *Compiler
	depth    int
	scratch  [16]byte
}

func NewEncoder() *Encoder {
	return &Encoder{
		compiler: NewCompiler(),
	}
}

func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Encode appends the encoding of value to sink. Bytes written before a
// failure are not rolled back; use Marshal for all-or-nothing output.
func (e *Encoder) Encode(value any, sink Sink) error {
	if value == nil {
		return errors.NilPointer(errors.PhaseEncode, nil, "<nil>")
	}
	v := reflect.ValueOf(value)
	ct, err := e.compiler.Compile(v.Type())
	if err != nil {
		return err
	}
	return e.encode(ct, v, sink)
}

// EncodeValue encodes v with a type compiled ahead of time.
func (e *Encoder) EncodeValue(ct *CompiledType, v reflect.Value, sink Sink) error {
	if v.Type() != ct.GoType {
		return errors.TypeMismatch(errors.PhaseEncode, nil, v.Type().String(), ct.Kind.String())
	}
	return e.encode(ct, v, sink)
}

// Marshal encodes value into a pooled buffer and returns a copy of the
// bytes only when encoding succeeds.
func (e *Encoder) Marshal(value any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := e.Encode(value, buf); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func (e *Encoder) encode(ct *CompiledType, v reflect.Value, sink Sink) error {
	if !isContainer(ct.Kind) {
		return e.encodeValue(ct, v, sink)
	}
	if e.depth >= MaxDepth {
		return depthError(errors.PhaseEncode, ct)
	}
	e.depth++
	err := e.encodeValue(ct, v, sink)
	e.depth--
	return err
}

func (e *Encoder) encodeValue(ct *CompiledType, v reflect.Value, sink Sink) error {
	switch ct.Kind {
	case KindBool:
		var b byte
		if v.Bool() {
			b = 1
		}
		return e.writeByte(sink, b)

	case KindS8, KindS16, KindS32, KindS64:
		binary.LittleEndian.PutUint64(e.scratch[:8], uint64(v.Int()))
		return e.write(sink, e.scratch[:ct.Kind.Width()])

	case KindU8, KindU16, KindU32, KindU64:
		binary.LittleEndian.PutUint64(e.scratch[:8], v.Uint())
		return e.write(sink, e.scratch[:ct.Kind.Width()])

	case KindF32:
		binary.LittleEndian.PutUint32(e.scratch[:4], math.Float32bits(float32(v.Float())))
		return e.write(sink, e.scratch[:4])

	case KindF64:
		binary.LittleEndian.PutUint64(e.scratch[:8], math.Float64bits(v.Float()))
		return e.write(sink, e.scratch[:8])

	case KindC64:
		c := v.Complex()
		binary.LittleEndian.PutUint32(e.scratch[:4], math.Float32bits(float32(real(c))))
		binary.LittleEndian.PutUint32(e.scratch[4:8], math.Float32bits(float32(imag(c))))
		return e.write(sink, e.scratch[:8])

	case KindC128:
		c := v.Complex()
		binary.LittleEndian.PutUint64(e.scratch[:8], math.Float64bits(real(c)))
		binary.LittleEndian.PutUint64(e.scratch[8:16], math.Float64bits(imag(c)))
		return e.write(sink, e.scratch[:16])

	case KindString:
		return e.encodeString(v.String(), sink)

	case KindFunc:
		return nil

	case KindArray:
		return e.encodeElems(ct.ElemType, v, sink)

	case KindList:
		if err := e.writeLen(v.Len(), sink); err != nil {
			return err
		}
		if ct.ElemType.Kind == KindU8 {
			return e.write(sink, v.Bytes())
		}
		return e.encodeElems(ct.ElemType, v, sink)

	case KindMap:
		return e.encodeMap(ct, v, sink)

	case KindOption:
		if v.IsNil() {
			return e.writeByte(sink, 0)
		}
		if err := e.writeByte(sink, 1); err != nil {
			return err
		}
		return withPath(e.encode(ct.ElemType, v.Elem(), sink), "[some]")

	case KindObject:
		return e.encodeObject(ct, v, sink)

	case KindDynamic:
		if v.IsNil() {
			return errors.New(errors.PhaseEncode, errors.KindUnsupported).
				GoType(ct.GoType.String()).
				Detail("nil interface value has no wire form").
				Build()
		}
		concrete := v.Elem()
		dyn, err := e.compiler.Compile(concrete.Type())
		if err != nil {
			return err
		}
		return e.encode(dyn, concrete, sink)

	default:
		return errors.Unsupported(errors.PhaseEncode, "kind "+ct.Kind.String())
	}
}

func (e *Encoder) encodeString(s string, sink Sink) error {
	if err := e.writeLen(len(s), sink); err != nil {
		return err
	}
	if sw, ok := sink.(io.StringWriter); ok {
		if _, err := sw.WriteString(s); err != nil {
			return errors.IO(errors.PhaseEncode, nil, err)
		}
		return nil
	}
	return e.write(sink, []byte(s))
}

func (e *Encoder) encodeElems(elem *CompiledType, v reflect.Value, sink Sink) error {
	n := v.Len()
	for i := 0; i < n; i++ {
		if err := e.encode(elem, v.Index(i), sink); err != nil {
			return withPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

// encodeMap writes entries in ascending key order so equal maps always
// produce equal bytes. Entries are collected with their values because keys
// such as NaN cannot be looked up again.
func (e *Encoder) encodeMap(ct *CompiledType, v reflect.Value, sink Sink) error {
	n := v.Len()
	if err := e.writeLen(n, sink); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	type entry struct {
		key     reflect.Value
		value   reflect.Value
		encoded []byte
	}
	entries := make([]entry, 0, n)
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key(), value: iter.Value()})
	}

	if isOrdered(ct.KeyType.Kind) {
		// NaN keys compare equal to each other; their values break the tie.
		nan := false
		for _, ent := range entries {
			nan = nan || isNaN(ent.key)
		}
		if nan {
			for i := range entries {
				buf := wirepack.NewBuffer(16)
				if err := e.encode(ct.ElemType, entries[i].value, buf); err != nil {
					return withPath(err, "[value]")
				}
				entries[i].encoded = buf.Bytes()
			}
		}
		slices.SortStableFunc(entries, func(a, b entry) int {
			if c := compareKeys(a.key, b.key); c != 0 {
				return c
			}
			return bytes.Compare(a.encoded, b.encoded)
		})
		for _, ent := range entries {
			if err := e.encode(ct.KeyType, ent.key, sink); err != nil {
				return withPath(err, "[key]")
			}
			if err := e.encode(ct.ElemType, ent.value, sink); err != nil {
				return withPath(err, "[value]")
			}
		}
		return nil
	}

	// Keys without a natural order are sorted by their encoding.
	for i := range entries {
		buf := wirepack.NewBuffer(16)
		if err := e.encode(ct.KeyType, entries[i].key, buf); err != nil {
			return withPath(err, "[key]")
		}
		entries[i].encoded = buf.Bytes()
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return bytes.Compare(a.encoded, b.encoded)
	})
	for _, ent := range entries {
		if err := e.write(sink, ent.encoded); err != nil {
			return err
		}
		if err := e.encode(ct.ElemType, ent.value, sink); err != nil {
			return withPath(err, "[value]")
		}
	}
	return nil
}

func (e *Encoder) encodeObject(ct *CompiledType, v reflect.Value, sink Sink) error {
	// Member accessors take the object's address.
	if !v.CanAddr() {
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}

	// The member count is written even though it is static, so sparse
	// encodings of the same object stay readable.
	if err := e.writeLen(len(ct.Fields), sink); err != nil {
		return err
	}
	for i, f := range ct.Fields {
		if err := e.writeUint(uint64(i), sink); err != nil {
			return withPath(err, f.Member.Name)
		}
		mv := f.Member.Value(v)
		if !mv.IsValid() {
			return errors.NilPointer(errors.PhaseEncode, []string{f.Member.Name}, f.Type.GoType.String())
		}
		if err := e.encode(f.Type, mv, sink); err != nil {
			return withPath(err, f.Member.Name)
		}
	}
	return nil
}

func (e *Encoder) writeLen(n int, sink Sink) error {
	u, err := safecast.Convert[uint64](n)
	if err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindOverflow, err, "negative length")
	}
	return e.writeUint(u, sink)
}

func (e *Encoder) writeUint(u uint64, sink Sink) error {
	n, err := varint.Put(e.scratch[:], u)
	if err != nil {
		return err
	}
	return e.write(sink, e.scratch[:n])
}

func (e *Encoder) write(sink Sink, p []byte) error {
	if _, err := sink.Write(p); err != nil {
		return errors.IO(errors.PhaseEncode, nil, err)
	}
	return nil
}

func (e *Encoder) writeByte(sink Sink, b byte) error {
	if err := sink.WriteByte(b); err != nil {
		return errors.IO(errors.PhaseEncode, nil, err)
	}
	return nil
}

func isContainer(k TypeKind) bool {
	switch k {
	case KindArray, KindList, KindMap, KindOption, KindObject, KindDynamic:
		return true
	}
	return false
}

func depthError(phase errors.Phase, ct *CompiledType) error {
	return errors.New(phase, errors.KindOverflow).
		GoType(ct.GoType.String()).
		Value(MaxDepth).
		Detail("value nests deeper than %d levels", MaxDepth).
		Build()
}

func isOrdered(k TypeKind) bool {
	return k == KindBool || k.IsSigned() || k.IsUnsigned() ||
		k == KindF32 || k == KindF64 || k == KindString
}

func isNaN(k reflect.Value) bool {
	return (k.Kind() == reflect.Float32 || k.Kind() == reflect.Float64) && math.IsNaN(k.Float())
}

// compareKeys orders NaN before every other float.
func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return cmp.Compare(a.String(), b.String())
	}
}

// withPath prefixes a structured error's member path with seg.
func withPath(err error, seg string) error {
	if e, ok := err.(*errors.Error); ok {
		e.Path = append([]string{seg}, e.Path...)
	}
	return err
}
