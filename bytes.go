package ohc

// BytesSource is a read-only, byte-addressed buffer: the engine's view of
// a key or value supplied by a caller. Implementations that wrap a
// contiguous array should report HasArray so the engine can take the
// word-at-a-time fast paths in CompareKey and chain writing.
type BytesSource interface {
	// Size returns the number of bytes in the source.
	Size() int64
	// GetByte returns the byte at index i, 0 <= i < Size().
	GetByte(i int64) byte
	// HasArray reports whether the source is backed by a contiguous array
	// reachable via Array/ArrayOffset.
	HasArray() bool
	// Array returns the backing array. Only valid when HasArray is true.
	// The source owns this slice for the duration of the call; callers
	// must not retain it.
	Array() []byte
	// ArrayOffset returns the offset into Array() at which this source's
	// bytes begin.
	ArrayOffset() int
}

// BytesSink is a write-only, byte-addressed buffer. SetSize must be called
// exactly once, before any PutByte call.
type BytesSink interface {
	SetSize(n int)
	PutByte(i int, b byte)
}

// ArraySource is a BytesSource backed directly by a Go byte slice.
type ArraySource struct {
	buf []byte
}

// NewArraySource wraps buf as a BytesSource. buf is not copied; the
// caller must not mutate it while the source is in use.
func NewArraySource(buf []byte) ArraySource { return ArraySource{buf: buf} }

func (s ArraySource) Size() int64       { return int64(len(s.buf)) }
func (s ArraySource) GetByte(i int64) byte { return s.buf[i] }
func (s ArraySource) HasArray() bool    { return true }
func (s ArraySource) Array() []byte     { return s.buf }
func (s ArraySource) ArrayOffset() int  { return 0 }

// SliceSink is a BytesSink that materializes into an ordinary byte slice,
// the sink WriteValueToSink uses by default.
type SliceSink struct {
	buf []byte
}

// NewSliceSink returns an empty SliceSink; SetSize allocates its buffer.
func NewSliceSink() *SliceSink { return &SliceSink{} }

func (s *SliceSink) SetSize(n int)          { s.buf = make([]byte, n) }
func (s *SliceSink) PutByte(i int, b byte)  { s.buf[i] = b }

// Bytes returns the sink's accumulated contents.
func (s *SliceSink) Bytes() []byte { return s.buf }
