package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	t.Run("Write and reset", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte("abc"))
		require.NoError(t, bb.WriteByte(0))

		require.Equal(t, 4, bb.Len())
		require.Equal(t, []byte{'a', 'b', 'c', 0}, bb.Bytes())

		bb.Reset()
		require.Equal(t, 0, bb.Len())
	})

	t.Run("Extend returns zeroed region", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte{1, 2})

		region := bb.Extend(4)
		require.Equal(t, []byte{0, 0, 0, 0}, region)
		require.Equal(t, 6, bb.Len())

		region[0] = 9
		require.Equal(t, byte(9), bb.Bytes()[2])
	})

	t.Run("Grow prevents reallocation", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.Grow(128)

		header := bb.Extend(8)
		bb.MustWrite(make([]byte, 100))

		// The reserved region must still alias the buffer's backing array.
		header[0] = 7
		require.Equal(t, byte(7), bb.Bytes()[0])
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Get and put", func(t *testing.T) {
		p := NewByteBufferPool(32, 1024)

		bb := p.Get()
		require.NotNil(t, bb)
		bb.MustWrite([]byte("data"))
		p.Put(bb)

		reused := p.Get()
		require.Equal(t, 0, reused.Len())
	})

	t.Run("Oversized buffers discarded", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)

		bb := p.Get()
		bb.MustWrite(make([]byte, 1024))
		p.Put(bb) // silently dropped, must not panic

		require.NotNil(t, p.Get())
	})

	t.Run("Nil put", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		p.Put(nil)
	})

	t.Run("Default block pool", func(t *testing.T) {
		bb := GetBlockBuffer()
		require.NotNil(t, bb)
		PutBlockBuffer(bb)
	})
}
