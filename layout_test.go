package ohc

import "testing"

func TestRoundUp8(t *testing.T) {
	cases := map[int64]int64{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 15: 16, 16: 16, 200: 200, 201: 208}
	for in, want := range cases {
		if got := RoundUp8(in); got != want {
			t.Errorf("RoundUp8(%d) = %d, want %d", in, got, want)
		}
	}
}

// TestChainBlockCountS2 checks a worked example: block_size=128,
// key=200 bytes, value=400 bytes -> 6 blocks.
func TestChainBlockCountS2(t *testing.T) {
	cfg := Config{BlockSize: 128, PartitionCount: 1, LRUWarnThreshold: 1}
	if got := chainBlockCount(cfg, 200, 400); got != 6 {
		t.Fatalf("chainBlockCount = %d, want 6", got)
	}
}

func TestChainBlockCountSingleBlock(t *testing.T) {
	cfg := Config{BlockSize: 256, PartitionCount: 1, LRUWarnThreshold: 1}
	if got := chainBlockCount(cfg, 3, 2); got != 1 {
		t.Fatalf("chainBlockCount = %d, want 1", got)
	}
}

func TestChainBlockCountExactlyFitsFirstBlock(t *testing.T) {
	cfg := Config{BlockSize: 256, PartitionCount: 1, LRUWarnThreshold: 1}
	fbp := int64(cfg.firstBlockPayload())
	if got := chainBlockCount(cfg, 0, fbp); got != 1 {
		t.Fatalf("chainBlockCount = %d, want 1", got)
	}
	if got := chainBlockCount(cfg, 0, fbp+1); got != 2 {
		t.Fatalf("chainBlockCount = %d, want 2", got)
	}
}

func TestSeekWithinFirstBlock(t *testing.T) {
	e := &Engine{cfg: Config{BlockSize: 256, PartitionCount: 1, LRUWarnThreshold: 1}}
	addr, offset := e.seek(0x1000, 10)
	if addr != 0x1000 || offset != headerSize+10 {
		t.Fatalf("seek = (%x, %d), want (%x, %d)", addr, offset, 0x1000, headerSize+10)
	}
}
