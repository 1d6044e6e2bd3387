// Package atomicptr provides a lock-free, word-sized atomic pointer slot
// with two strengths of guarantee: no-barrier (relaxed) and acquire/release.
//
// The slot is a building block for larger lock-free structures in which a
// writer publishes a fully built object and readers must observe all of the
// writer's prior writes once they observe the published address. The
// discipline is the caller's: pair every ReleaseStore with an AcquireLoad on
// the observing side. The no-barrier operations are atomic with respect to
// the single word only and promise nothing about other memory locations.
//
// A slot never owns the object it points to; pointee lifetime is managed
// entirely by the caller. All operations are total, non-blocking, and
// complete in bounded constant time; there is nothing to fail and nothing
// to report at runtime.
//
// The ordering backend is chosen at build time, never at run time. On
// total-store-order architectures the plain-access backend compiles in;
// everywhere else (and always under the race detector, or with the
// atomicptr_generic build tag) the sync/atomic backend does. Both satisfy
// the same contract; callers must not depend on which one was selected.
package atomicptr

import "unsafe"

// noCopy makes `go vet -copylocks` flag copies of a slot after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// UnsafePointer is the untyped atomic pointer slot: a holder for one opaque
// pointer-width address. The zero value holds nil.
//
// Prefer Pointer[T] unless the address genuinely has no single static type.
type UnsafePointer struct {
	_ noCopy
	p unsafe.Pointer
}

// NewUnsafePointer returns a slot holding v.
func NewUnsafePointer(v unsafe.Pointer) *UnsafePointer {
	return &UnsafePointer{p: v}
}

// NoBarrierLoad returns the current address. It is atomic with respect to
// the slot's word only and establishes no ordering against other memory.
//
//go:nosplit
func (x *UnsafePointer) NoBarrierLoad() unsafe.Pointer {
	return loadPtr(&x.p)
}

// NoBarrierStore sets the address with no ordering against other memory.
//
//go:nosplit
func (x *UnsafePointer) NoBarrierStore(v unsafe.Pointer) {
	storePtr(&x.p, v)
}

// AcquireLoad returns the current address. No memory operation of the
// calling thread that follows this load can be observed before it.
//
//go:nosplit
func (x *UnsafePointer) AcquireLoad() unsafe.Pointer {
	return loadPtrAcquire(&x.p)
}

// ReleaseStore sets the address. Every memory operation of the calling
// thread that precedes this store is visible to any thread whose
// AcquireLoad observes the stored value.
//
//go:nosplit
func (x *UnsafePointer) ReleaseStore(v unsafe.Pointer) {
	storePtrRelease(&x.p, v)
}

// Pointer is the typed atomic pointer slot for addresses of type *T. The
// zero value holds nil. It carries the same four operations and the same
// ordering contract as UnsafePointer.
type Pointer[T any] struct {
	_ noCopy

	// Pins T so distinct instantiations are not convertible to one
	// another. See go.dev/issue/56603.
	_ [0]*T

	p unsafe.Pointer
}

// New returns a slot holding v.
func New[T any](v *T) *Pointer[T] {
	return &Pointer[T]{p: unsafe.Pointer(v)}
}

// NoBarrierLoad returns the current address with no ordering guarantee.
//
//go:nosplit
func (x *Pointer[T]) NoBarrierLoad() *T {
	return (*T)(loadPtr(&x.p))
}

// NoBarrierStore sets the address with no ordering guarantee.
//
//go:nosplit
func (x *Pointer[T]) NoBarrierStore(v *T) {
	storePtr(&x.p, unsafe.Pointer(v))
}

// AcquireLoad returns the current address with acquire ordering.
//
//go:nosplit
func (x *Pointer[T]) AcquireLoad() *T {
	return (*T)(loadPtrAcquire(&x.p))
}

// ReleaseStore sets the address with release ordering, publishing every
// prior write of the calling thread to observers of this value.
//
//go:nosplit
func (x *Pointer[T]) ReleaseStore(v *T) {
	storePtrRelease(&x.p, unsafe.Pointer(v))
}
