package ohc

import "errors"

var (
	// ErrOutOfMemory is returned by Insert/CreateEntry when the block
	// allocator is exhausted. It is the one recoverable condition this
	// engine produces. Callers are expected to evict and retry.
	ErrOutOfMemory = errors.New("ohc: block allocator exhausted")

	// ErrInvalidArgument is returned for programmer errors such as a
	// negative explicit value length passed to CreateEntryForStreaming.
	ErrInvalidArgument = errors.New("ohc: invalid argument")

	// ErrValueTooLarge is returned when a value's length exceeds
	// math.MaxInt32, the limit imposed by exposing a value through an
	// int-sized BytesSink.
	ErrValueTooLarge = errors.New("ohc: value length exceeds int32 range")

	// ErrValueWriteOverflow is returned when a value-stream write would
	// exceed the value's declared length.
	ErrValueWriteOverflow = errors.New("ohc: value write exceeds declared length")
)

// ErrLRUCycle wraps a detected cycle in a partition's LRU list. Such a
// cycle is an internal invariant violation, not a condition callers can
// recover from, so it surfaces as a panic rather than a returned error.
var ErrLRUCycle = errors.New("ohc: lru cycle detected")

// ErrZeroBlocks wraps a computed chain size of zero or fewer blocks, an
// internal invariant violation that should be unreachable given a
// validated Config, so it surfaces as a panic.
var ErrZeroBlocks = errors.New("ohc: computed zero blocks for chain")
