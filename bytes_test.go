package ohc

import "testing"

func TestArraySource(t *testing.T) {
	buf := []byte("hello")
	s := NewArraySource(buf)
	if s.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", s.Size())
	}
	if !s.HasArray() {
		t.Fatal("HasArray() = false, want true")
	}
	if s.ArrayOffset() != 0 {
		t.Fatalf("ArrayOffset() = %d, want 0", s.ArrayOffset())
	}
	for i := int64(0); i < s.Size(); i++ {
		if s.GetByte(i) != buf[i] {
			t.Fatalf("GetByte(%d) = %d, want %d", i, s.GetByte(i), buf[i])
		}
	}
}

func TestSliceSink(t *testing.T) {
	sink := NewSliceSink()
	sink.SetSize(3)
	sink.PutByte(0, 'a')
	sink.PutByte(1, 'b')
	sink.PutByte(2, 'c')
	if got := string(sink.Bytes()); got != "abc" {
		t.Fatalf("Bytes() = %q, want %q", got, "abc")
	}
}
