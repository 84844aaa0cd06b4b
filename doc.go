// Package ohc implements the hash-entry engine of an off-heap,
// partitioned, LRU-ordered key/value cache: the binary layout of a
// variable-length entry as a chain of fixed-size blocks, lookup of an
// entry by hash and key within a partition, per-partition LRU maintenance,
// entry-level locking, and streaming read/write over an entry's payload.
//
// # Overview
//
// Entries are stored outside the managed Go heap, in fixed-size blocks
// linked into per-entry chains. Each partition owns a lock and the head of
// an intrusive doubly-linked LRU list threaded through the entries'
// headers, so there is no separate node allocation for list bookkeeping.
// That saving lets this cache hold large amounts of data without
// burdening the garbage collector.
//
// # Architecture
//
//	┌─────────────────────────────────────────────┐
//	│                   Engine                     │
//	│  CreateEntry · FindEntry · Insert · HotN ·   │
//	│  RemoveAll · LRULengths · LockEntry          │
//	└───────────────┬───────────────┬──────────────┘
//	                │               │
//	        ┌───────▼──────┐ ┌──────▼───────┐
//	        │ PartitionTable│ │  Allocator   │
//	        │ (lock + LRU   │ │ (block chain │
//	        │  head/part.)  │ │  reservation)│
//	        └───────────────┘ └──────┬───────┘
//	                                 │
//	                          ┌──────▼───────┐
//	                          │  memaccess    │
//	                          │ (off-heap mem)│
//	                          └───────────────┘
//
// The Allocator and PartitionTable are interfaces the Engine depends on;
// internal/blockalloc and internal/partition supply the default
// implementations. The allocator carves its blocks out of
// internal/memaccess's mmap-obtained off-heap regions; the partition
// table is an ordinary Go slice of lock + LRU-head descriptors. The raw
// memory accessor itself is not behind an
// interface: unlike the allocator and partition table, this engine only
// ever needs one strategy for it (aligned acquire/release loads and
// stores over a real address), so it is exposed as a set of plain
// functions rather than a swappable abstraction.
//
// # Concurrency
//
// Two lock granularities apply. The partition lock guards a partition's
// LRU head and the lru_prev/lru_next fields of every entry on that
// partition's list; it is held during lookup, LRU mutation, and
// partition-scoped iteration. The entry lock guards an entry's payload
// region independently of the partition lock and is never nested inside
// another entry's lock. Partition locks may be acquired before an entry
// lock; never the reverse.
package ohc
