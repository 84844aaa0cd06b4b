package ohc

import "github.com/arynos/ohc/internal/memaccess"

// FindEntry walks the partition owning hash looking for an entry whose
// stored hash and key match, returning its head address or 0 on a miss.
func (e *Engine) FindEntry(hash uint64, key BytesSource) uintptr {
	idx := e.table.LockForHash(hash)
	defer e.table.Unlock(idx)
	return e.findEntryLocked(idx, hash, key)
}

// findEntryLocked performs the walk itself; the caller must already hold
// the partition's lock.
func (e *Engine) findEntryLocked(idx uint32, hash uint64, key BytesSource) uintptr {
	start := e.table.LRUHead(idx)
	cur := start
	iterations := 0
	for cur != 0 {
		iterations++
		if iterations > 1 && cur == start {
			panic(ErrLRUCycle)
		}
		if e.readHash(cur) == hash {
			if e.readKeyLength(cur) == key.Size() && e.compareKey(cur, key) {
				maybeWarnLongLookup(idx, iterations, e.cfg.LRUWarnThreshold)
				return cur
			}
		}
		cur = e.readLRUNext(cur)
	}
	maybeWarnLongLookup(idx, iterations, e.cfg.LRUWarnThreshold)
	return 0
}

// CompareKey reports whether the bytes stored as addr's key equal key.
func (e *Engine) CompareKey(addr uintptr, key BytesSource) bool {
	return e.compareKey(addr, key)
}

func (e *Engine) compareKey(head uintptr, key BytesSource) bool {
	keyLen := e.readKeyLength(head)
	if keyLen != key.Size() {
		return false
	}
	if key.HasArray() {
		return e.compareWordwise(head, keyLen, key.Array(), key.ArrayOffset())
	}
	return e.compareBytewise(head, keyLen, key)
}

func (e *Engine) compareBytewise(head uintptr, keyLen int64, key BytesSource) bool {
	blockSize := e.blockSizeInt()
	addr := head
	offset := headerSize
	for i := int64(0); i < keyLen; i++ {
		if offset == blockSize {
			addr = e.nextBlockOf(addr)
			offset = contHeaderSize
		}
		if memaccess.GetByte(addr+uintptr(offset)) != key.GetByte(i) {
			return false
		}
		offset++
	}
	return true
}

// compareWordwise loads 8-byte words from both the chain and the
// key's backing array when both sides are 8-byte aligned and at least 8
// bytes remain in the current block and in the key; it falls back to a
// byte-by-byte compare otherwise (near the end of the key, or near a
// block boundary). The header sizes (64 then 8) keep the chain side
// aligned until one of those fallback conditions applies.
func (e *Engine) compareWordwise(head uintptr, keyLen int64, arr []byte, arrOff int) bool {
	blockSize := e.blockSizeInt()
	addr := head
	offset := headerSize
	i := int64(0)
	for i < keyLen {
		if offset == blockSize {
			addr = e.nextBlockOf(addr)
			offset = contHeaderSize
		}
		blockRemaining := blockSize - offset
		if keyLen-i >= 8 && blockRemaining >= 8 && offset%8 == 0 && (arrOff+int(i))%8 == 0 {
			if memaccess.GetLong(addr+uintptr(offset)) != memaccess.GetLongFromByteArray(arr, arrOff+int(i)) {
				return false
			}
			offset += 8
			i += 8
			continue
		}
		if memaccess.GetByte(addr+uintptr(offset)) != arr[arrOff+int(i)] {
			return false
		}
		offset++
		i++
	}
	return true
}
