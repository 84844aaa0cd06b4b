package ohc

import "github.com/arynos/ohc/internal/memaccess"

// Entry head layout (first block of a chain). Continuation blocks carry
// only next_block at offset 0, with payload starting at offset 8.
const (
	offNextBlock   = 0
	offHash        = 8
	offLRUPrev     = 16
	offLRUNext     = 24
	offKeyLength   = 32
	offValueLength = 40
	offEntryLock   = 48
	// offset 56 is reserved/padding.

	headerSize     = 64 // first-block header size; payload starts here
	contHeaderSize = 8  // continuation-block header size; payload starts here
)

// RoundUp8 rounds n up to the next multiple of 8, the alignment boundary
// between a chain's key bytes and its value bytes.
func RoundUp8(n int64) int64 { return (n + 7) &^ 7 }

func ceilDiv(a, b int64) int64 { return (a + b - 1) / b }

// chainBlockCount computes the number of blocks a chain needs to hold a
// key of keyLen bytes followed by 8-byte alignment padding and a value of
// valueLen bytes.
func chainBlockCount(cfg Config, keyLen, valueLen int64) int {
	total := RoundUp8(keyLen) + valueLen
	fbp := int64(cfg.firstBlockPayload())
	if total <= fbp {
		return 1
	}
	rem := total - fbp
	nbp := int64(cfg.nextBlockPayload())
	return 1 + int(ceilDiv(rem, nbp))
}

func (e *Engine) blockSizeInt() int { return int(e.cfg.BlockSize) }

func (e *Engine) readHash(addr uintptr) uint64 {
	return uint64(memaccess.GetLongAcquire(addr + offHash))
}

func (e *Engine) writeHash(addr uintptr, h uint64) {
	memaccess.PutLongRelease(addr+offHash, int64(h))
}

func (e *Engine) readKeyLength(addr uintptr) int64 {
	return memaccess.GetLongAcquire(addr + offKeyLength)
}

func (e *Engine) writeKeyLength(addr uintptr, n int64) {
	memaccess.PutLongRelease(addr+offKeyLength, n)
}

func (e *Engine) readValueLength(addr uintptr) int64 {
	return memaccess.GetLongAcquire(addr + offValueLength)
}

func (e *Engine) writeValueLength(addr uintptr, n int64) {
	memaccess.PutLongRelease(addr+offValueLength, n)
}

func (e *Engine) readLRUPrev(addr uintptr) uintptr {
	return uintptr(memaccess.GetLongAcquire(addr + offLRUPrev))
}

func (e *Engine) writeLRUPrev(addr uintptr, v uintptr) {
	memaccess.PutLongRelease(addr+offLRUPrev, int64(v))
}

func (e *Engine) readLRUNext(addr uintptr) uintptr {
	return uintptr(memaccess.GetLongAcquire(addr + offLRUNext))
}

func (e *Engine) writeLRUNext(addr uintptr, v uintptr) {
	memaccess.PutLongRelease(addr+offLRUNext, int64(v))
}

// nextBlockOf follows the next_block header word shared by head and
// continuation blocks alike (both carry it at offset 0).
func (e *Engine) nextBlockOf(addr uintptr) uintptr {
	return uintptr(memaccess.GetLong(addr))
}

// seek walks n bytes forward from the start of a chain's payload (offset
// headerSize of the head block), following next_block links as needed,
// and returns the landing block address and in-block offset. This is the
// value-cursor positioning algorithm: it skips past the key and its
// alignment padding to find where the value begins.
func (e *Engine) seek(head uintptr, n int64) (uintptr, int) {
	addr := head
	offset := headerSize
	blockSize := e.blockSizeInt()
	for n > 0 {
		avail := int64(blockSize - offset)
		step := n
		if step > avail {
			step = avail
		}
		offset += int(step)
		n -= step
		if offset == blockSize {
			addr = e.nextBlockOf(addr)
			offset = contHeaderSize
		}
	}
	return addr, offset
}
