//go:build (amd64 || 386 || s390x) && !race && !atomicptr_generic

package atomicptr

import "unsafe"

// Plain-access ordering backend for total-store-order architectures.
//
// On TSO hardware an aligned word load is already an acquire and an aligned
// word store already a release, so the fence the ordered operations need
// degenerates to a compiler barrier. For the ordered pair that barrier is
// the call edge itself, which is why loadPtrAcquire and storePtrRelease are
// marked noinline: an inlined plain access could be hoisted or sunk by the
// compiler. The no-barrier pair promises no ordering and stays inlinable.
//
// Release stores in particular are much cheaper here than in the generic
// backend, which pays a full atomic read-modify-write per store on amd64.

// fenceBackend is consulted by tests only; callers must not depend on
// backend identity.
const fenceBackend = true

//go:nosplit
func loadPtr(addr *unsafe.Pointer) unsafe.Pointer {
	return *addr
}

//go:nosplit
func storePtr(addr *unsafe.Pointer, val unsafe.Pointer) {
	*addr = val
}

//go:nosplit
//go:noinline
func loadPtrAcquire(addr *unsafe.Pointer) unsafe.Pointer {
	return *addr
}

//go:nosplit
//go:noinline
func storePtrRelease(addr *unsafe.Pointer, val unsafe.Pointer) {
	*addr = val
}
