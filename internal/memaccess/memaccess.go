// Package memaccess provides aligned load/store primitives over raw
// addresses backed by memory obtained outside the Go heap, plus a
// spin/park lock primitive keyed on an 8-byte word at a given address.
//
// Every function here treats its uintptr argument as a real memory address
// into a region returned by MapAnonymous (or carved out of one by an
// allocator). The region is pinned for the lifetime of the process, or
// until Unmap is called, so converting the address back to
// unsafe.Pointer on each call is safe: there is no Go-managed object for
// the garbage collector to move or reclaim underneath it.
package memaccess

import (
	"encoding/binary"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"
)

// AddrOf returns the address of the first byte of b. b must be non-empty
// and must not be moved or resized for as long as the returned address is
// used. In practice this means b came from MapAnonymous, never from a
// slice the Go runtime is free to relocate.
func AddrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

func ptr(addr uintptr) unsafe.Pointer {
	// addr always points into a pinned, off-heap-backed region (see the
	// package doc comment); this is the one place that fact is load-bearing.
	return unsafe.Pointer(addr) //nolint:govet
}

// GetLong performs a relaxed 8-byte load.
func GetLong(addr uintptr) int64 { return *(*int64)(ptr(addr)) }

// PutLong performs a relaxed 8-byte store.
func PutLong(addr uintptr, v int64) { *(*int64)(ptr(addr)) = v }

// GetLongAcquire performs an acquire 8-byte load.
func GetLongAcquire(addr uintptr) int64 {
	return atomic.LoadInt64((*int64)(ptr(addr)))
}

// PutLongRelease performs a release 8-byte store.
func PutLongRelease(addr uintptr, v int64) {
	atomic.StoreInt64((*int64)(ptr(addr)), v)
}

// GetByte loads a single byte.
func GetByte(addr uintptr) byte { return *(*byte)(ptr(addr)) }

// PutByte stores a single byte.
func PutByte(addr uintptr, v byte) { *(*byte)(ptr(addr)) = v }

// CopyIn copies src into the off-heap region starting at dst.
func CopyIn(dst uintptr, src []byte) {
	if len(src) == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(ptr(dst)), len(src)), src)
}

// CopyOut copies len(dst) bytes from the off-heap region starting at src
// into dst.
func CopyOut(dst []byte, src uintptr) {
	if len(dst) == 0 {
		return
	}
	copy(dst, unsafe.Slice((*byte)(ptr(src)), len(dst)))
}

// GetLongFromByteArray performs a little-endian 8-byte load from a host
// byte slice at the given offset, used by the word-wise key-compare fast
// path to read the array-backed side of the comparison.
func GetLongFromByteArray(b []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}

// Lock spins on the 8-byte word at addr until it can transition it from 0
// (free) to 1 (held), backing off with a capped exponential delay. Short
// critical sections are assumed; see the entry lock design note.
func Lock(addr uintptr) {
	word := (*int64)(ptr(addr))
	backoff := time.Microsecond
	for !atomic.CompareAndSwapInt64(word, 0, 1) {
		for i := 0; i < 32; i++ {
			if atomic.LoadInt64(word) == 0 && atomic.CompareAndSwapInt64(word, 0, 1) {
				return
			}
			runtime.Gosched()
		}
		time.Sleep(backoff)
		if backoff < time.Millisecond {
			backoff *= 2
		}
	}
}

// Unlock releases the 8-byte word at addr previously taken with Lock.
func Unlock(addr uintptr) {
	atomic.StoreInt64((*int64)(ptr(addr)), 0)
}
