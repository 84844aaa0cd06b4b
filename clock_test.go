package ohc

import "testing"

func TestMaybeWarnLongLookupSuppressesBelowThreshold(t *testing.T) {
	lastWarnNanos.Store(0)
	maybeWarnLongLookup(0, 3, 100)
	if lastWarnNanos.Load() != 0 {
		t.Fatal("expected no warning for a below-threshold chain length")
	}
}

func TestMaybeWarnLongLookupFiresAboveThreshold(t *testing.T) {
	lastWarnNanos.Store(0)
	maybeWarnLongLookup(0, 500, 100)
	before := lastWarnNanos.Load()
	if before == 0 {
		t.Fatal("expected lastWarnNanos to be updated after an over-threshold warning")
	}
	// A second call within the suppression window should not update it again.
	maybeWarnLongLookup(0, 500, 100)
	if lastWarnNanos.Load() != before {
		t.Fatal("expected rate limiter to suppress the second warning")
	}
}
