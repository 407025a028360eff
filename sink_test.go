package wirepack

import (
	"bytes"
	"errors"
	"testing"
)

// byteSink implements only Sink, forcing Fill's byte-at-a-time path.
type byteSink struct {
	data []byte
	fail error
}

func (s *byteSink) Write(p []byte) (int, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	s.data = append(s.data, p...)
	return len(p), nil
}

func (s *byteSink) WriteByte(c byte) error {
	if s.fail != nil {
		return s.fail
	}
	s.data = append(s.data, c)
	return nil
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(2)
	if _, err := b.Write([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteByte(4); err != nil {
		t.Fatal(err)
	}
	b.Fill(0, 2)

	want := []byte{1, 2, 3, 4, 0, 0}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", b.Bytes(), want)
	}
	if b.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(want))
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d", b.Len())
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		sink Sink
		n    int
		want []byte
	}{
		{"filler", NewBuffer(0), 3, []byte{7, 7, 7}},
		{"byte sink", &byteSink{}, 3, []byte{7, 7, 7}},
		{"zero", &byteSink{}, 0, nil},
		{"negative", NewBuffer(0), -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Fill(tt.sink, 7, tt.n); err != nil {
				t.Fatalf("Fill failed: %v", err)
			}
			var got []byte
			switch s := tt.sink.(type) {
			case *Buffer:
				got = s.Bytes()
			case *byteSink:
				got = s.data
			}
			if len(got) != len(tt.want) || !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("sink error", func(t *testing.T) {
		closed := errors.New("closed")
		if err := Fill(&byteSink{fail: closed}, 0, 1); !errors.Is(err, closed) {
			t.Errorf("Fill error = %v, want %v", err, closed)
		}
	})
}
