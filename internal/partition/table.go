// Package partition implements the partition table collaborator: a fixed
// array of partition descriptors, each owning a lock and an LRU head
// address, selected by hash modulo the partition count. Each descriptor
// pairs a sync.Mutex with its partition's LRU head in one struct rather
// than running parallel slices, so the lock and the state it protects
// are always indexed together.
package partition

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type descriptor struct {
	mu   sync.Mutex
	head atomic.Uintptr
}

// Table is a fixed-size array of partition descriptors.
type Table struct {
	mask        uint32
	descriptors []descriptor
}

// New creates a table with count partitions. count must be a power of two.
func New(count uint32) (*Table, error) {
	if count == 0 || count&(count-1) != 0 {
		return nil, fmt.Errorf("partition: count %d is not a power of two", count)
	}
	return &Table{
		mask:        count - 1,
		descriptors: make([]descriptor, count),
	}, nil
}

// Count returns the number of partitions.
func (t *Table) Count() uint32 { return uint32(len(t.descriptors)) }

// LockForHash locks the partition owning hash and returns its index.
func (t *Table) LockForHash(hash uint64) uint32 {
	idx := uint32(hash) & t.mask
	t.descriptors[idx].mu.Lock()
	return idx
}

// LockIndex locks the partition at idx directly, used by bulk operations
// that already know which partition they want (remove_all, lru_lengths).
func (t *Table) LockIndex(idx uint32) {
	t.descriptors[idx].mu.Lock()
}

// Unlock releases the partition at idx.
func (t *Table) Unlock(idx uint32) {
	t.descriptors[idx].mu.Unlock()
}

// LRUHead returns the current LRU head address of the partition at idx.
func (t *Table) LRUHead(idx uint32) uintptr {
	return t.descriptors[idx].head.Load()
}

// SetLRUHead sets the LRU head address of the partition at idx.
func (t *Table) SetLRUHead(idx uint32, addr uintptr) {
	t.descriptors[idx].head.Store(addr)
}
