package atomicptr

import "unsafe"

// PaddedPointer is a Pointer padded out to a full cache line. Use it when
// slots sit next to each other in memory, typically as elements of a dense
// array, so that writers hammering one slot do not invalidate the cache
// line of its neighbors. It costs CacheLineSize bytes per slot instead of
// one word.
type PaddedPointer[T any] struct {
	Pointer[T]

	//lint:ignore U1000 prevents false sharing
	pad [CacheLineSize - unsafe.Sizeof(unsafe.Pointer(nil))]byte
}

// NewPadded returns a padded slot holding v.
func NewPadded[T any](v *T) *PaddedPointer[T] {
	p := &PaddedPointer[T]{}
	p.NoBarrierStore(v)
	return p
}
