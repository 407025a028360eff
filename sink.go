package wirepack

// Sink is an append-only byte destination.
type Sink interface {
	Write(p []byte) (int, error)
	WriteByte(c byte) error
}

// Filler is implemented by sinks that can append n copies of a byte
// without an intermediate slice. The binary encoder never emits runs of a
// fixed byte; Fill and Filler exist for code writing padding or framing
// around encoded values.
type Filler interface {
	Fill(c byte, n int)
}

// Fill appends n copies of c to s.
func Fill(s Sink, c byte, n int) error {
	if n <= 0 {
		return nil
	}
	if f, ok := s.(Filler); ok {
		f.Fill(c, n)
		return nil
	}
	for i := 0; i < n; i++ {
		if err := s.WriteByte(c); err != nil {
			return err
		}
	}
	return nil
}

// Buffer is a growable in-memory Sink.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Buffer) Fill(c byte, n int) {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
}

// Bytes returns the buffered bytes. The slice aliases the buffer until the
// next write.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
