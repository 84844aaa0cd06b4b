package ohc

import (
	"bytes"
	"io"
	"testing"

	"github.com/arynos/ohc/internal/hashutil"
	"github.com/stretchr/testify/require"
)

// TestInvariant7CrossBlockRoundTrip checks property 7: for block sizes
// 256, 1024, 4096 and key/value sizes at the listed boundary cases,
// create_entry followed by key/value stream reads reproduces the
// original bytes exactly.
func TestInvariant7CrossBlockRoundTrip(t *testing.T) {
	blockSizes := []uint32{256, 1024, 4096}
	for _, bs := range blockSizes {
		sizes := []int{0, 1, 7, 8, 9, int(bs) - 64 - 1, int(bs) - 64, int(bs) - 64 + 1, 10 * int(bs)}
		for _, sz := range sizes {
			key := make([]byte, sz)
			value := make([]byte, sz)
			for i := range key {
				key[i] = byte(i * 13)
				value[i] = byte(i*17 + 1)
			}

			e, closeFn := newTestEngine(t, bs, 4)
			hash := hashutil.Hash(append([]byte{byte(sz)}, key...))
			addr, err := e.Insert(hash, NewArraySource(key), NewArraySource(value))
			require.NoError(t, err, "blockSize=%d size=%d", bs, sz)

			gotKey := readAll(t, e.KeyReader(addr))
			gotValue := readAll(t, e.ValueReader(addr))
			require.Equal(t, key, gotKey, "blockSize=%d size=%d key mismatch", bs, sz)
			require.Equal(t, value, gotValue, "blockSize=%d size=%d value mismatch", bs, sz)

			closeFn()
		}
	}
}

func TestCursorReadReturnsEOFAtBudget(t *testing.T) {
	e, closeFn := newTestEngine(t, 256, 1)
	defer closeFn()

	key := []byte("k")
	value := []byte("value-bytes")
	hash := hashutil.Hash(key)
	addr, err := e.Insert(hash, NewArraySource(key), NewArraySource(value))
	require.NoError(t, err)

	vr := e.ValueReader(addr)
	buf := make([]byte, len(value))
	n, err := vr.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(value), n)
	require.Equal(t, value, buf)

	_, err = vr.Read(buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestCursorWriteRejectsOverBudget(t *testing.T) {
	e, closeFn := newTestEngine(t, 256, 1)
	defer closeFn()

	key := []byte("k")
	hash := hashutil.Hash(key)
	_, cur, err := e.InsertForStreaming(hash, NewArraySource(key), 4)
	require.NoError(t, err)

	_, err = cur.Write([]byte("too many bytes"))
	require.ErrorIs(t, err, ErrValueWriteOverflow)
}

func TestCursorUnderBudgetWriteLeavesTrailingBytes(t *testing.T) {
	e, closeFn := newTestEngine(t, 256, 1)
	defer closeFn()

	key := []byte("k")
	hash := hashutil.Hash(key)
	addr, cur, err := e.InsertForStreaming(hash, NewArraySource(key), 8)
	require.NoError(t, err)

	n, err := cur.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got := readAll(t, e.ValueReader(addr))
	require.True(t, bytes.HasPrefix(got, []byte("ab")))
	require.Len(t, got, 8)
}
