//go:build atomicptr_cachelinesize_64

package atomicptr

const CacheLineSize = 64
