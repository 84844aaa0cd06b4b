package ohc

import (
	"testing"

	"github.com/arynos/ohc/internal/hashutil"
	"github.com/stretchr/testify/require"
)

// byteSource is a BytesSource with no backing array, forcing compareKey's
// byte-by-byte path, used to check invariant 6 (word-aligned and
// byte-aligned compare paths must agree).
type byteSource struct{ buf []byte }

func (s byteSource) Size() int64         { return int64(len(s.buf)) }
func (s byteSource) GetByte(i int64) byte { return s.buf[i] }
func (s byteSource) HasArray() bool      { return false }
func (s byteSource) Array() []byte       { panic("no array") }
func (s byteSource) ArrayOffset() int    { panic("no array") }

func TestInvariant6WordAndByteCompareAgree(t *testing.T) {
	blockSizes := []uint32{256, 1024, 4096}
	lengths := []int{0, 1, 7, 8, 9, 63, 64, 65, 500}

	for _, bs := range blockSizes {
		for _, n := range lengths {
			e, closeFn := newTestEngine(t, bs, 4)

			key := make([]byte, n)
			for i := range key {
				key[i] = byte(i*7 + 3)
			}
			hash := hashutil.Hash(key)
			addr, err := e.Insert(hash, NewArraySource(key), NewArraySource([]byte("v")))
			require.NoError(t, err)

			arrResult := e.compareKey(addr, NewArraySource(key))
			byteResult := e.compareKey(addr, byteSource{buf: key})
			require.True(t, arrResult)
			require.True(t, byteResult)
			require.Equal(t, arrResult, byteResult)

			if n > 0 {
				mutated := append([]byte(nil), key...)
				mutated[n-1] ^= 0xFF
				require.Equal(t, e.compareKey(addr, NewArraySource(mutated)), e.compareKey(addr, byteSource{buf: mutated}))
			}

			closeFn()
		}
	}
}

func TestFindEntryCycleDetectionPanics(t *testing.T) {
	e, closeFn := newTestEngine(t, 256, 1)
	defer closeFn()

	key := []byte("x")
	hash := hashutil.Hash(key)
	addr, err := e.Insert(hash, NewArraySource(key), NewArraySource(nil))
	require.NoError(t, err)

	// Corrupt the LRU list into a self-loop to exercise cycle detection.
	e.writeLRUNext(addr, addr)

	require.Panics(t, func() {
		e.findEntryLocked(0, hash, NewArraySource([]byte("nomatch")))
	})
}
