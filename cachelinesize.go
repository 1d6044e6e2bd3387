//go:build !atomicptr_cachelinesize_32 && !atomicptr_cachelinesize_64 && !atomicptr_cachelinesize_128 && !atomicptr_cachelinesize_256

package atomicptr

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding granularity used to keep neighboring slots
// off each other's cache lines. Derived from `golang.org/x/sys` for the
// target architecture; override with the atomicptr_cachelinesize_* tags.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
