package varint

import (
	"bytes"
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wirepack/errors"
)

func TestPutTiers(t *testing.T) {
	tests := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{3, []byte{0x0c}},
		{63, []byte{0xfc}},
		{64, []byte{0x01, 0x01}},
		{16383, []byte{0xfd, 0xff}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{Max4, []byte{0xfe, 0xff, 0xff, 0xff}},
		{Max4 + 1, []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{Max8, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got, err := Append(nil, tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "value %d", tt.v)

		n, err := Size(tt.v)
		require.NoError(t, err)
		assert.Len(t, got, n)
		assert.Equal(t, n, Len(got[0]))
	}
}

func TestRoundTrip(t *testing.T) {
	boundaries := []uint64{0, 1, Max1, Max1 + 1, Max2, Max2 + 1, Max4, Max4 + 1, Max8 - 1, Max8}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		boundaries = append(boundaries, r.Uint64()>>(2+r.Intn(62)))
	}

	for _, v := range boundaries {
		enc, err := Append(nil, v)
		require.NoError(t, err)

		got, n, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(enc), n)

		want := 8
		switch {
		case v < 1<<6:
			want = 1
		case v < 1<<14:
			want = 2
		case v < 1<<30:
			want = 4
		}
		assert.Len(t, enc, want, "smallest tier for %d", v)
	}
}

func TestSizeNotSupported(t *testing.T) {
	for _, v := range []uint64{Max8 + 1, 1 << 63, ^uint64(0)} {
		_, err := Size(v)
		assert.True(t, stderrors.Is(err, errors.ErrSizeNotSupported))

		dst, err := Append([]byte{0xaa}, v)
		assert.True(t, stderrors.Is(err, errors.ErrSizeNotSupported))
		assert.Equal(t, []byte{0xaa}, dst)

		var buf bytes.Buffer
		err = Write(&buf, v)
		assert.True(t, stderrors.Is(err, errors.ErrSizeNotSupported))
		assert.Zero(t, buf.Len(), "no bytes may be written on overflow")
	}
}

func TestPutShortBuffer(t *testing.T) {
	dst := make([]byte, 1)
	_, err := Put(dst, 100)
	require.Error(t, err)
	assert.Equal(t, byte(0), dst[0])
}

func TestDecodeTruncated(t *testing.T) {
	tests := [][]byte{
		nil,
		{0x01},
		{0x02, 0x00, 0x00},
		{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	for _, src := range tests {
		_, _, err := Decode(src)
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindOutOfBounds, e.Kind)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed") }

func TestWriteSinkError(t *testing.T) {
	err := Write(failWriter{}, 5)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindIO, e.Kind)
}
