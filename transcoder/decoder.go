package transcoder

import (
	"encoding/binary"
	"math"
	"reflect"
	"strconv"

	"github.com/ccoveille/go-safecast"

	"github.com/wippyai/wirepack/errors"
	"github.com/wippyai/wirepack/varint"
)

// Decoder reads the binary wire format into Go values.
type Decoder struct {
	compiler *Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{
		compiler: NewCompiler(),
	}
}

func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Decode reads one value from data into the value out points to and
// returns the number of bytes consumed.
func (d *Decoder) Decode(data []byte, out any) (int, error) {
	rv := reflect.ValueOf(out)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		goType := "<nil>"
		if rv.IsValid() {
			goType = rv.Type().String()
		}
		return 0, errors.NilPointer(errors.PhaseDecode, nil, goType)
	}

	target := rv.Elem()
	ct, err := d.compiler.Compile(target.Type())
	if err != nil {
		return 0, err
	}
	return d.DecodeValue(ct, data, target)
}

// DecodeValue reads into target, which must be settable and of ct's type.
func (d *Decoder) DecodeValue(ct *CompiledType, data []byte, target reflect.Value) (int, error) {
	if target.Type() != ct.GoType || !target.CanSet() {
		return 0, errors.TypeMismatch(errors.PhaseDecode, nil, target.Type().String(), ct.Kind.String())
	}
	r := &reader{data: data}
	if err := d.decode(ct, r, target); err != nil {
		return r.pos, err
	}
	return r.pos, nil
}

// maxEmptyElems bounds counts of elements that occupy no input bytes.
const maxEmptyElems = 1 << 16

type reader struct {
	data  []byte
	pos   int
	depth int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) take(n int) ([]byte, error) {
	if n > r.remaining() {
		return nil, errors.Truncated(nil, n, r.remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) readUint() (uint64, error) {
	v, n, err := varint.Decode(r.data[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// readCount reads a count of items that each occupy at least minSize bytes,
// rejecting counts the remaining input cannot hold.
func (r *reader) readCount(minSize int) (int, error) {
	v, err := r.readUint()
	if err != nil {
		return 0, err
	}
	n, err := safecast.Convert[int](v)
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDecode, nil, v, "int")
	}
	if minSize == 0 {
		if n > maxEmptyElems {
			return 0, errors.OutOfBounds(errors.PhaseDecode, nil, n, maxEmptyElems)
		}
		return n, nil
	}
	if n > r.remaining()/minSize {
		return 0, errors.Truncated(nil, n*minSize, r.remaining())
	}
	return n, nil
}

func (d *Decoder) decode(ct *CompiledType, r *reader, v reflect.Value) error {
	if !isContainer(ct.Kind) {
		return d.decodeValue(ct, r, v)
	}
	if r.depth >= MaxDepth {
		return depthError(errors.PhaseDecode, ct)
	}
	r.depth++
	err := d.decodeValue(ct, r, v)
	r.depth--
	return err
}

func (d *Decoder) decodeValue(ct *CompiledType, r *reader, v reflect.Value) error {
	switch ct.Kind {
	case KindBool:
		b, err := r.take(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			v.SetBool(false)
		case 1:
			v.SetBool(true)
		default:
			return errors.InvalidData(errors.PhaseDecode, nil, "invalid bool byte "+strconv.Itoa(int(b[0])))
		}
		return nil

	case KindS8, KindS16, KindS32, KindS64:
		b, err := r.take(ct.Kind.Width())
		if err != nil {
			return err
		}
		v.SetInt(readSigned(b))
		return nil

	case KindU8, KindU16, KindU32, KindU64:
		b, err := r.take(ct.Kind.Width())
		if err != nil {
			return err
		}
		v.SetUint(readUnsigned(b))
		return nil

	case KindF32:
		b, err := r.take(4)
		if err != nil {
			return err
		}
		v.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
		return nil

	case KindF64:
		b, err := r.take(8)
		if err != nil {
			return err
		}
		v.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		return nil

	case KindC64:
		b, err := r.take(8)
		if err != nil {
			return err
		}
		re := math.Float32frombits(binary.LittleEndian.Uint32(b[:4]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
		v.SetComplex(complex(float64(re), float64(im)))
		return nil

	case KindC128:
		b, err := r.take(16)
		if err != nil {
			return err
		}
		re := math.Float64frombits(binary.LittleEndian.Uint64(b[:8]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(b[8:]))
		v.SetComplex(complex(re, im))
		return nil

	case KindString:
		n, err := r.readCount(1)
		if err != nil {
			return err
		}
		b, err := r.take(n)
		if err != nil {
			return err
		}
		v.SetString(string(b))
		return nil

	case KindFunc:
		return nil

	case KindArray:
		if ct.IsFixed() && ct.MinSize() > r.remaining() {
			return errors.Truncated(nil, ct.MinSize(), r.remaining())
		}
		return d.decodeElems(ct.ElemType, r, v, ct.Len)

	case KindList:
		n, err := r.readCount(ct.ElemType.MinSize())
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(ct.GoType, n, n)
		if ct.ElemType.Kind == KindU8 {
			b, err := r.take(n)
			if err != nil {
				return err
			}
			copy(s.Bytes(), b)
			v.Set(s)
			return nil
		}
		if err := d.decodeElems(ct.ElemType, r, s, n); err != nil {
			return err
		}
		v.Set(s)
		return nil

	case KindMap:
		return d.decodeMap(ct, r, v)

	case KindOption:
		b, err := r.take(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			v.SetZero()
			return nil
		case 1:
			p := reflect.New(ct.GoType.Elem())
			if err := d.decode(ct.ElemType, r, p.Elem()); err != nil {
				return withPath(err, "[some]")
			}
			v.Set(p)
			return nil
		default:
			return errors.InvalidData(errors.PhaseDecode, nil, "invalid presence byte "+strconv.Itoa(int(b[0])))
		}

	case KindObject:
		return d.decodeObject(ct, r, v)

	default:
		return errors.New(errors.PhaseDecode, errors.KindUnsupported).
			GoType(ct.GoType.String()).
			WireType(ct.Kind.String()).
			Detail("cannot decode into this type").
			Build()
	}
}

func (d *Decoder) decodeElems(elem *CompiledType, r *reader, v reflect.Value, n int) error {
	for i := 0; i < n; i++ {
		if err := d.decode(elem, r, v.Index(i)); err != nil {
			return withPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

func (d *Decoder) decodeMap(ct *CompiledType, r *reader, v reflect.Value) error {
	n, err := r.readCount(ct.KeyType.MinSize() + ct.ElemType.MinSize())
	if err != nil {
		return err
	}
	m := reflect.MakeMapWithSize(ct.GoType, n)
	for i := 0; i < n; i++ {
		key := reflect.New(ct.GoType.Key()).Elem()
		if err := d.decode(ct.KeyType, r, key); err != nil {
			return withPath(err, "[key]")
		}
		val := reflect.New(ct.GoType.Elem()).Elem()
		if err := d.decode(ct.ElemType, r, val); err != nil {
			return withPath(err, "[value]")
		}
		m.SetMapIndex(key, val)
	}
	v.Set(m)
	return nil
}

// decodeObject accepts any subset of members; members absent from the
// input keep their current values.
func (d *Decoder) decodeObject(ct *CompiledType, r *reader, v reflect.Value) error {
	n, err := r.readCount(1)
	if err != nil {
		return err
	}
	if n > len(ct.Fields) {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			GoType(ct.GoType.String()).
			Detail("object has %d members, input declares %d", len(ct.Fields), n).
			Build()
	}
	for i := 0; i < n; i++ {
		tag, err := r.readUint()
		if err != nil {
			return err
		}
		if tag >= uint64(len(ct.Fields)) {
			return errors.FieldUnknown(errors.PhaseDecode, []string{ct.GoType.String()}, tag)
		}
		f := ct.Fields[tag]
		mv := f.Member.Value(v)
		if !mv.IsValid() {
			return errors.NilPointer(errors.PhaseDecode, []string{f.Member.Name}, f.Type.GoType.String())
		}
		if err := d.decode(f.Type, r, mv); err != nil {
			return withPath(err, f.Member.Name)
		}
	}
	return nil
}

func readSigned(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	default:
		return int64(binary.LittleEndian.Uint64(b))
	}
}

func readUnsigned(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}
