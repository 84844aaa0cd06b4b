// Package blockalloc implements the block allocator collaborator named in
// the engine's interfaces: allocate_chain(n) -> addr, free_chain(head_addr).
//
// It carves block_size-byte blocks out of arenas obtained from
// internal/memaccess and threads unused blocks onto an intrusive free
// list. The free list reuses each free block's next_block header word,
// so tracking free blocks costs nothing beyond the blocks themselves, the
// same "no side allocation" argument the engine's LRU list makes for its
// own intrusive pointers.
package blockalloc

import (
	"sync"

	"github.com/arynos/ohc/internal/memaccess"
)

// Allocator is a free-list allocator over one or more off-heap arenas, all
// cut into fixed blockSize blocks.
type Allocator struct {
	mu sync.Mutex

	blockSize      int
	blocksPerArena int
	maxArenas      int // 0 means unlimited

	arenas   [][]byte
	freeHead uintptr // 0 == empty
}

// Option configures a new Allocator.
type Option func(*Allocator)

// WithBlocksPerArena sets how many blocks each growth step maps at once.
// Defaults to 1024.
func WithBlocksPerArena(n int) Option {
	return func(a *Allocator) { a.blocksPerArena = n }
}

// WithMaxArenas caps the number of arenas the allocator will ever map,
// simulating a fixed memory ceiling so exhaustion can be exercised
// without mapping real terabytes in tests.
func WithMaxArenas(n int) Option {
	return func(a *Allocator) { a.maxArenas = n }
}

// New creates an allocator for the given block size (must already be
// validated as a power of two by the caller; this package does not
// re-validate it).
func New(blockSize int, opts ...Option) *Allocator {
	a := &Allocator{
		blockSize:      blockSize,
		blocksPerArena: 1024,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AllocateChain reserves n blocks, links them head-to-tail via their
// next_block header words (the last one's is left at 0), and returns the
// head address. It returns ErrExhausted if growth would exceed the
// configured arena ceiling.
func (a *Allocator) AllocateChain(n int) (uintptr, error) {
	if n <= 0 {
		return 0, ErrInvalidBlockCount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	blocks := make([]uintptr, 0, n)
	for len(blocks) < n {
		if a.freeHead == 0 {
			if err := a.grow(); err != nil {
				return 0, err
			}
		}
		b := a.freeHead
		a.freeHead = uintptr(memaccess.GetLong(b))
		blocks = append(blocks, b)
	}

	for i, b := range blocks {
		var next int64
		if i+1 < len(blocks) {
			next = int64(blocks[i+1])
		}
		memaccess.PutLong(b, next)
	}
	return blocks[0], nil
}

// FreeChain walks the chain rooted at head and returns every block to the
// free list in a single pass.
func (a *Allocator) FreeChain(head uintptr) {
	if head == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	cur := head
	for cur != 0 {
		next := uintptr(memaccess.GetLong(cur))
		memaccess.PutLong(cur, int64(a.freeHead))
		a.freeHead = cur
		cur = next
	}
}

// grow maps one more arena and threads its blocks onto the free list.
// Callers must hold a.mu.
func (a *Allocator) grow() error {
	if a.maxArenas > 0 && len(a.arenas) >= a.maxArenas {
		return ErrExhausted
	}
	region, err := memaccess.MapAnonymous(a.blocksPerArena * a.blockSize)
	if err != nil {
		return ErrExhausted
	}
	a.arenas = append(a.arenas, region)

	base := memaccess.AddrOf(region)
	for i := a.blocksPerArena - 1; i >= 0; i-- {
		addr := base + uintptr(i*a.blockSize)
		memaccess.PutLong(addr, int64(a.freeHead))
		a.freeHead = addr
	}
	return nil
}

// Close unmaps every arena the allocator holds. Only safe once nothing
// still references blocks carved out of them.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var firstErr error
	for _, region := range a.arenas {
		if err := memaccess.Unmap(region); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.arenas = nil
	a.freeHead = 0
	return firstErr
}
