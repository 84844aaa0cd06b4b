package ohc

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// coarseClockNanos is a process-wide, lazily-refreshed clock used only to
// rate-limit the LRU-length warning: reading it avoids a time.Now()
// syscall on every lookup, the same amortization trick a TTL cache uses
// to keep its own expiry clock off the hot path.
var coarseClockNanos atomic.Int64

// lastWarnNanos is the single process-wide "last warned at" timestamp the
// rate limiter compares against. This update is not required to be atomic
// with the read that precedes it. At worst a race produces one duplicate
// warning.
var lastWarnNanos atomic.Int64

const warnSuppressWindow = 10 * time.Second

func init() {
	coarseClockNanos.Store(time.Now().UnixNano())
	go func() {
		for {
			time.Sleep(100 * time.Millisecond)
			coarseClockNanos.Store(time.Now().UnixNano())
		}
	}()
}

func nowNanos() int64 { return coarseClockNanos.Load() }

// maybeWarnLongLookup emits a rate-limited warning when a lookup traverses
// more than threshold links of a partition's LRU chain. This is an
// observability signal, not a failure: it never blocks or alters the
// lookup's result, and is suppressed for warnSuppressWindow after firing
// to keep a persistently oversized partition from flooding logs.
func maybeWarnLongLookup(partitionIdx uint32, chainLength int, threshold uint64) {
	if uint64(chainLength) <= threshold {
		return
	}
	now := nowNanos()
	last := lastWarnNanos.Load()
	if now-last < int64(warnSuppressWindow) {
		return
	}
	lastWarnNanos.Store(now)
	slog.Warn("partition lookup traversed a long LRU chain",
		"partition", partitionIdx,
		"chain_length", chainLength,
		"threshold", threshold)
}
