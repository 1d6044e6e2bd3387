//go:build !amd64 && !386 && !s390x || race || atomicptr_generic

package atomicptr

import (
	"sync/atomic"
	"unsafe"
)

// Generic ordering backend on sync/atomic, the floor available on every Go
// port. Go exposes a single ordering strength, at least as strong as
// acquire/release, so the no-barrier pair rides on the same primitives; the
// contract only promises a minimum. Compiled in on non-TSO architectures,
// under the race detector, and when forced with the atomicptr_generic tag.

const fenceBackend = false

//go:nosplit
func loadPtr(addr *unsafe.Pointer) unsafe.Pointer {
	return atomic.LoadPointer(addr)
}

//go:nosplit
func storePtr(addr *unsafe.Pointer, val unsafe.Pointer) {
	atomic.StorePointer(addr, val)
}

//go:nosplit
func loadPtrAcquire(addr *unsafe.Pointer) unsafe.Pointer {
	return atomic.LoadPointer(addr)
}

//go:nosplit
func storePtrRelease(addr *unsafe.Pointer, val unsafe.Pointer) {
	atomic.StorePointer(addr, val)
}
