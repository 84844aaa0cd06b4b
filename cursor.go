package ohc

import (
	"io"

	"github.com/arynos/ohc/internal/memaccess"
)

// Cursor is a small positioning struct streaming bytes across a chain's
// block boundaries, deliberately not a general iterator, since bulk copy
// across block boundaries is the hot path. A Cursor holds no lock;
// callers serialize access through the partition lock or an entry lock
// as appropriate.
type Cursor struct {
	e           *Engine
	blockAddr   uintptr
	blockOffset int
	remaining   int64
}

// Remaining reports how many bytes are left in the cursor's budget.
func (c *Cursor) Remaining() int64 { return c.remaining }

// Read implements io.Reader, filling p with up to len(p) bytes (bounded by
// the cursor's remaining budget) and returning io.EOF once the budget is
// exhausted. A zero-length read returns 0, nil.
func (c *Cursor) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.remaining <= 0 {
		return 0, io.EOF
	}
	blockSize := c.e.blockSizeInt()
	n := 0
	for n < len(p) && c.remaining > 0 {
		avail := blockSize - c.blockOffset
		toCopy := avail
		if rest := len(p) - n; rest < toCopy {
			toCopy = rest
		}
		if int64(toCopy) > c.remaining {
			toCopy = int(c.remaining)
		}
		memaccess.CopyOut(p[n:n+toCopy], c.blockAddr+uintptr(c.blockOffset))
		n += toCopy
		c.blockOffset += toCopy
		c.remaining -= int64(toCopy)
		if c.blockOffset == blockSize && c.remaining > 0 {
			c.blockAddr = c.e.nextBlockOf(c.blockAddr)
			c.blockOffset = contHeaderSize
		}
	}
	return n, nil
}

// ReadByte reads a single byte from the cursor.
func (c *Cursor) ReadByte() (byte, error) {
	var b [1]byte
	n, err := c.Read(b[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return b[0], nil
}

// Write implements io.Writer. Writing more than Remaining bytes is an
// error; writing fewer is permitted and leaves trailing bytes
// uninitialized from the caller's perspective.
func (c *Cursor) Write(p []byte) (int, error) {
	if int64(len(p)) > c.remaining {
		return 0, ErrValueWriteOverflow
	}
	blockSize := c.e.blockSizeInt()
	n := 0
	for n < len(p) {
		avail := blockSize - c.blockOffset
		toCopy := avail
		if rest := len(p) - n; rest < toCopy {
			toCopy = rest
		}
		memaccess.CopyIn(c.blockAddr+uintptr(c.blockOffset), p[n:n+toCopy])
		n += toCopy
		c.blockOffset += toCopy
		c.remaining -= int64(toCopy)
		if c.blockOffset == blockSize && c.remaining > 0 {
			c.blockAddr = c.e.nextBlockOf(c.blockAddr)
			c.blockOffset = contHeaderSize
		}
	}
	return n, nil
}

// WriteByte writes a single byte to the cursor.
func (c *Cursor) WriteByte(b byte) error {
	_, err := c.Write([]byte{b})
	return err
}

// keyCursor returns a cursor positioned at the start of an entry's key,
// budgeted to keyLen bytes.
func (e *Engine) keyCursor(head uintptr, keyLen int64) *Cursor {
	return &Cursor{e: e, blockAddr: head, blockOffset: headerSize, remaining: keyLen}
}

// valueCursor returns a cursor positioned at the start of an entry's
// value, budgeted to valueLen bytes.
func (e *Engine) valueCursor(head uintptr, keyLen, valueLen int64) *Cursor {
	addr, offset := e.seek(head, RoundUp8(keyLen))
	return &Cursor{e: e, blockAddr: addr, blockOffset: offset, remaining: valueLen}
}

// KeyReader opens a streaming reader positioned at the start of addr's
// key.
func (e *Engine) KeyReader(addr uintptr) *Cursor {
	return e.keyCursor(addr, e.readKeyLength(addr))
}

// ValueReader opens a streaming reader positioned at the start of addr's
// value.
func (e *Engine) ValueReader(addr uintptr) *Cursor {
	keyLen := e.readKeyLength(addr)
	valueLen := e.readValueLength(addr)
	return e.valueCursor(addr, keyLen, valueLen)
}

// ValueWriter opens a streaming writer positioned at the start of addr's
// value, for filling in a value created via CreateEntryForStreaming /
// InsertForStreaming.
func (e *Engine) ValueWriter(addr uintptr) *Cursor {
	return e.ValueReader(addr)
}

// maxSinkLen is the largest value length WriteValueToSink will accept,
// matching the int-sized BytesSink contract.
const maxSinkLen = 1<<31 - 1

// WriteValueToSink copies addr's entire value into sink, sizing it first.
// A value_length greater than 2^31-1 cannot be exposed through an
// int-sized sink and is reported as ErrValueTooLarge without touching the
// entry's header or payload.
func (e *Engine) WriteValueToSink(addr uintptr, sink BytesSink) error {
	valueLen := e.readValueLength(addr)
	if valueLen > maxSinkLen {
		return ErrValueTooLarge
	}
	sink.SetSize(int(valueLen))
	vr := e.ValueReader(addr)
	buf := make([]byte, 4096)
	i := 0
	for i < int(valueLen) {
		n, err := vr.Read(buf)
		for j := 0; j < n; j++ {
			sink.PutByte(i, buf[j])
			i++
		}
		if err != nil && err != io.EOF {
			return err
		}
		if n == 0 {
			break
		}
	}
	return nil
}

func writeSource(cur *Cursor, src BytesSource) error {
	if src.HasArray() {
		arr := src.Array()
		off := src.ArrayOffset()
		n := int(src.Size())
		_, err := cur.Write(arr[off : off+n])
		return err
	}
	n := src.Size()
	for i := int64(0); i < n; i++ {
		if err := cur.WriteByte(src.GetByte(i)); err != nil {
			return err
		}
	}
	return nil
}
