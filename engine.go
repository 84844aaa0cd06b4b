package ohc

import (
	"fmt"

	"github.com/arynos/ohc/internal/blockalloc"
	"github.com/arynos/ohc/internal/partition"
)

// Allocator is the block allocator collaborator the engine depends on:
// allocate_chain(n) -> addr, free_chain(head_addr). internal/blockalloc
// supplies the default, mmap-backed implementation.
type Allocator interface {
	// AllocateChain reserves n blocks pre-linked by their next_block
	// headers and returns the head address, or an error if the allocator
	// is exhausted.
	AllocateChain(n int) (uintptr, error)
	// FreeChain returns every block in the chain rooted at head to the
	// allocator in one call.
	FreeChain(head uintptr)
}

// PartitionTable is the partition table collaborator the engine depends
// on: lock_partition_for_hash, unlock_partition, get_lru_head,
// set_lru_head. Partitions are addressed by index rather than raw
// pointer.
type PartitionTable interface {
	// LockForHash locks the partition owning hash and returns its index.
	LockForHash(hash uint64) uint32
	// LockIndex locks the partition at idx directly.
	LockIndex(idx uint32)
	// Unlock releases the partition at idx.
	Unlock(idx uint32)
	// LRUHead returns the LRU head address of the partition at idx.
	LRUHead(idx uint32) uintptr
	// SetLRUHead sets the LRU head address of the partition at idx.
	SetLRUHead(idx uint32, addr uintptr)
	// Count returns the number of partitions in the table.
	Count() uint32
}

// Engine is the hash-entry engine: chain layout, chain writer, streaming
// reader/writer, LRU maintenance, lookup, entry-level locking, and bulk
// operations, all driven against an Allocator and a PartitionTable.
type Engine struct {
	cfg   Config
	alloc Allocator
	table PartitionTable
}

// New constructs an Engine over caller-supplied collaborators. Most
// callers should use NewDefault instead, which also builds the default
// off-heap allocator and partition table.
func New(cfg Config, alloc Allocator, table PartitionTable) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if table.Count() != cfg.PartitionCount {
		return nil, fmt.Errorf("ohc: partition table has %d partitions, config wants %d", table.Count(), cfg.PartitionCount)
	}
	return &Engine{cfg: cfg, alloc: alloc, table: table}, nil
}

// NewDefault constructs an Engine backed by the default mmap-based
// allocator and partition table. The returned close function unmaps all
// off-heap memory the allocator acquired; callers must call it once the
// Engine is no longer in use.
func NewDefault(cfg Config) (*Engine, func() error, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	alloc := blockalloc.New(int(cfg.BlockSize))
	table, err := partition.New(cfg.PartitionCount)
	if err != nil {
		return nil, nil, err
	}
	e, err := New(cfg, alloc, table)
	if err != nil {
		return nil, nil, err
	}
	return e, alloc.Close, nil
}

// Insert creates an entry for (hash, key, value) and links it at the head
// of its partition's LRU, all under that partition's lock. It returns the
// new entry's head address.
func (e *Engine) Insert(hash uint64, key, value BytesSource) (uintptr, error) {
	idx := e.table.LockForHash(hash)
	defer e.table.Unlock(idx)

	addr, err := e.CreateEntry(hash, key, value)
	if err != nil {
		return 0, err
	}
	e.AddAsHead(idx, addr)
	return addr, nil
}

// InsertForStreaming creates an entry with its value left uninitialized
// and links it at the head of its partition's LRU, returning a cursor
// positioned at the start of the value ready for the caller to fill via
// Write. The cursor holds no lock.
func (e *Engine) InsertForStreaming(hash uint64, key BytesSource, valueLen int64) (uintptr, *Cursor, error) {
	idx := e.table.LockForHash(hash)
	defer e.table.Unlock(idx)

	addr, err := e.CreateEntryForStreaming(hash, key, valueLen)
	if err != nil {
		return 0, nil, err
	}
	e.AddAsHead(idx, addr)
	return addr, e.valueCursor(addr, key.Size(), valueLen), nil
}
