//go:build atomicptr_cachelinesize_128

package atomicptr

const CacheLineSize = 128
