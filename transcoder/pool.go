package transcoder

import "sync"

var defaultCompiler = NewCompiler()

// DefaultCompiler returns the compiler shared by the package-level functions.
func DefaultCompiler() *Compiler {
	return defaultCompiler
}

var encoderPool = sync.Pool{
	New: func() any {
		return NewEncoderWithCompiler(defaultCompiler)
	},
}

func getEncoder() *Encoder {
	return encoderPool.Get().(*Encoder)
}

func putEncoder(e *Encoder) {
	encoderPool.Put(e)
}

// Encode appends the encoding of value to sink using pooled state.
func Encode(value any, sink Sink) error {
	e := getEncoder()
	defer putEncoder(e)
	return e.Encode(value, sink)
}

// Marshal returns the encoding of value.
func Marshal(value any) ([]byte, error) {
	e := getEncoder()
	defer putEncoder(e)
	return e.Marshal(value)
}

// Unmarshal decodes data into out, returning the bytes consumed.
func Unmarshal(data []byte, out any) (int, error) {
	return NewDecoderWithCompiler(defaultCompiler).Decode(data, out)
}
