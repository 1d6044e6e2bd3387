package atomicptr

import (
	"testing"
	"unsafe"
)

func TestCacheLineSize(t *testing.T) {
	if CacheLineSize < 32 || CacheLineSize&(CacheLineSize-1) != 0 {
		t.Fatalf("CacheLineSize = %d, want a power of two >= 32", CacheLineSize)
	}
}

func TestPaddedPointerSize(t *testing.T) {
	if s := unsafe.Sizeof(PaddedPointer[uint64]{}); s%CacheLineSize != 0 {
		t.Fatalf("Sizeof(PaddedPointer) = %d, not a multiple of CacheLineSize %d", s, CacheLineSize)
	}
	if s := unsafe.Sizeof(PaddedPointer[[3]string]{}); s%CacheLineSize != 0 {
		t.Fatalf("Sizeof(PaddedPointer) = %d, not a multiple of CacheLineSize %d", s, CacheLineSize)
	}
}

func TestPaddedPointerRoundTrip(t *testing.T) {
	v := new(uint64)
	*v = 7

	x := NewPadded(v)
	if got := x.NoBarrierLoad(); got != v {
		t.Errorf("got %p, want %p", got, v)
	}

	w := new(uint64)
	x.ReleaseStore(w)
	if got := x.AcquireLoad(); got != w {
		t.Errorf("got %p, want %p", got, w)
	}
}
