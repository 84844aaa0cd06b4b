package ohc

import "golang.org/x/sync/errgroup"

// RemoveAll frees every entry in every partition and resets all LRU heads
// to empty. For each partition the lock is held only
// long enough to snapshot lru_head and reset it to 0; the actual chain
// frees happen after release, so clearing never holds a partition lock
// for the duration of a bulk free. Partitions are processed concurrently,
// one goroutine per partition. Freed entries are locked before freeing
// but never unlocked. The memory is returned to the allocator
// regardless, and the lock word goes with it.
func (e *Engine) RemoveAll() error {
	var g errgroup.Group
	count := e.table.Count()
	for i := uint32(0); i < count; i++ {
		idx := i
		g.Go(func() error {
			e.table.LockIndex(idx)
			snapshot := e.table.LRUHead(idx)
			e.table.SetLRUHead(idx, 0)
			e.table.Unlock(idx)

			for cur := snapshot; cur != 0; {
				next := e.readLRUNext(cur)
				e.LockEntry(cur)
				e.alloc.FreeChain(cur)
				cur = next
			}
			return nil
		})
	}
	return g.Wait()
}

// LRULengths returns the number of entries currently linked in each
// partition's LRU list, indexed by partition number. Partitions are
// walked concurrently; each result slot is written only by the goroutine
// owning that partition, so no further synchronization is needed.
func (e *Engine) LRULengths() []int {
	count := e.table.Count()
	lengths := make([]int, count)

	var g errgroup.Group
	for i := uint32(0); i < count; i++ {
		idx := i
		g.Go(func() error {
			e.table.LockIndex(idx)
			defer e.table.Unlock(idx)

			n := 0
			for cur := e.table.LRUHead(idx); cur != 0; cur = e.readLRUNext(cur) {
				n++
			}
			lengths[idx] = n
			return nil
		})
	}
	_ = g.Wait()
	return lengths
}

// HotN locks the partition owning hash and invokes cb once per entry in
// that partition's LRU list, head to tail, the iteration-callback
// mechanism a higher layer uses to sample its hottest entries. cb must
// not call back into the Engine for the same partition.
func (e *Engine) HotN(hash uint64, cb func(addr uintptr)) {
	idx := e.table.LockForHash(hash)
	defer e.table.Unlock(idx)

	for cur := e.table.LRUHead(idx); cur != 0; cur = e.readLRUNext(cur) {
		cb(cur)
	}
}
