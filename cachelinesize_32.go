//go:build atomicptr_cachelinesize_32

package atomicptr

const CacheLineSize = 32
