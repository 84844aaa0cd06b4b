package ohc

import "github.com/arynos/ohc/internal/memaccess"

// CreateEntry allocates a chain sized for (key, value) and streams key
// bytes, 8-byte-aligned padding, then value bytes into it. It returns the
// new entry's head address, or ErrOutOfMemory if the allocator is
// exhausted.
func (e *Engine) CreateEntry(hash uint64, key, value BytesSource) (uintptr, error) {
	return e.createEntry(hash, key, value, value.Size())
}

// CreateEntryForStreaming allocates a chain sized for a key and a value of
// valueLen bytes, but leaves the value payload uninitialized. The caller
// fills it through a ValueWriter; the entry is not linked into any LRU
// list, so it stays invisible to lookups until the caller links it.
// InsertForStreaming instead links the entry first and then returns the
// value cursor.
func (e *Engine) CreateEntryForStreaming(hash uint64, key BytesSource, valueLen int64) (uintptr, error) {
	if valueLen < 0 {
		return 0, ErrInvalidArgument
	}
	return e.createEntry(hash, key, nil, valueLen)
}

func (e *Engine) createEntry(hash uint64, key BytesSource, value BytesSource, valueLen int64) (uintptr, error) {
	keyLen := key.Size()
	if keyLen < 0 || valueLen < 0 {
		return 0, ErrInvalidArgument
	}

	blocks := chainBlockCount(e.cfg, keyLen, valueLen)
	if blocks <= 0 {
		panic(ErrZeroBlocks)
	}

	head, err := e.alloc.AllocateChain(blocks)
	if err != nil || head == 0 {
		return 0, ErrOutOfMemory
	}

	e.writeHash(head, hash)
	e.writeLRUPrev(head, 0)
	e.writeLRUNext(head, 0)
	memaccess.PutLongRelease(head+offEntryLock, 0)
	e.writeKeyLength(head, keyLen)
	e.writeValueLength(head, valueLen)

	if err := e.writeChainPayload(head, key, value, valueLen); err != nil {
		e.alloc.FreeChain(head)
		return 0, err
	}
	return head, nil
}

func (e *Engine) writeChainPayload(head uintptr, key, value BytesSource, valueLen int64) error {
	keyLen := key.Size()
	kc := e.keyCursor(head, keyLen)
	if err := writeSource(kc, key); err != nil {
		return err
	}
	if value != nil {
		vc := e.valueCursor(head, keyLen, valueLen)
		return writeSource(vc, value)
	}
	return nil
}
