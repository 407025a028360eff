package codec

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/valyala/bytebufferpool"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/errors"
	"github.com/wippyai/wirepack/transcoder"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Write encodes v into sink in the format opts selects.
func Write(opts wirepack.Opts, v any, sink wirepack.Sink) error {
	switch opts.Format {
	case wirepack.FormatBinary:
		return transcoder.Encode(v, sink)
	case wirepack.FormatCBOR:
		w := &trackedSink{sink: sink}
		if err := encMode.NewEncoder(w).Encode(v); err != nil {
			return w.fail(opts.Format, err)
		}
		return nil
	case wirepack.FormatMsgpack:
		w := &trackedSink{sink: sink}
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(v); err != nil {
			return w.fail(opts.Format, err)
		}
		return nil
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown format "+opts.Format.String())
	}
}

// Marshal returns the encoding of v, or no bytes at all on failure.
func Marshal(opts wirepack.Opts, v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := Write(opts, v, buf); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

// Unmarshal decodes data into out. The whole input must be consumed.
func Unmarshal(opts wirepack.Opts, data []byte, out any) error {
	switch opts.Format {
	case wirepack.FormatBinary:
		n, err := transcoder.Unmarshal(data, out)
		if err != nil {
			return err
		}
		if n != len(data) {
			return errors.New(errors.PhaseDecode, errors.KindInvalidData).
				WireType(opts.Format.String()).
				Detail("%d trailing bytes", len(data)-n).
				Build()
		}
		return nil
	case wirepack.FormatCBOR:
		if err := decMode.Unmarshal(data, out); err != nil {
			return decodeError(opts.Format, err)
		}
		return nil
	case wirepack.FormatMsgpack:
		r := bytes.NewReader(data)
		if err := msgpack.NewDecoder(r).Decode(out); err != nil {
			return decodeError(opts.Format, err)
		}
		if r.Len() != 0 {
			return errors.New(errors.PhaseDecode, errors.KindInvalidData).
				WireType(opts.Format.String()).
				Detail("%d trailing bytes", r.Len()).
				Build()
		}
		return nil
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown format "+opts.Format.String())
	}
}

// trackedSink remembers the first sink failure so it can be told apart
// from encoder failures.
type trackedSink struct {
	sink wirepack.Sink
	err  error
}

func (w *trackedSink) Write(p []byte) (int, error) {
	n, err := w.sink.Write(p)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

func (w *trackedSink) WriteByte(c byte) error {
	err := w.sink.WriteByte(c)
	if err != nil && w.err == nil {
		w.err = err
	}
	return err
}

func (w *trackedSink) fail(f wirepack.Format, err error) error {
	if w.err != nil {
		return errors.IO(errors.PhaseEncode, nil, w.err)
	}
	return errors.New(errors.PhaseEncode, errors.KindUnsupported).
		WireType(f.String()).
		Cause(err).
		Detail("%s encoder rejected value", f).
		Build()
}

func decodeError(f wirepack.Format, err error) error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		WireType(f.String()).
		Cause(err).
		Detail("%s decoder rejected input", f).
		Build()
}
