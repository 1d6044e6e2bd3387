//go:build atomicptr_cachelinesize_256

package atomicptr

const CacheLineSize = 256
