package ohc

import "github.com/arynos/ohc/internal/memaccess"

// LockEntry acquires the entry-level lock guarding addr's payload region
// (the key and value bytes). Independent of the partition lock; never
// call this while holding another entry's lock. The two lock kinds are
// acquired partition-then-entry, never nested entry-in-entry.
func (e *Engine) LockEntry(addr uintptr) { memaccess.Lock(addr + offEntryLock) }

// UnlockEntry releases the entry-level lock previously taken with
// LockEntry.
func (e *Engine) UnlockEntry(addr uintptr) { memaccess.Unlock(addr + offEntryLock) }
