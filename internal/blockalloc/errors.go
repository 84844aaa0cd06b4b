package blockalloc

import "errors"

var (
	// ErrInvalidBlockCount is returned when AllocateChain is asked for zero
	// or a negative number of blocks.
	ErrInvalidBlockCount = errors.New("blockalloc: block count must be positive")

	// ErrExhausted is returned when growth would exceed the allocator's
	// configured memory ceiling. It is the recoverable "out of memory"
	// condition the engine surfaces as a failed create_entry.
	ErrExhausted = errors.New("blockalloc: arena ceiling reached")
)
