package utils

import "runtime"

// MeasureMemory runs build and returns the delta in runtime.MemStats
// attributable to it, forcing a GC before and after to exclude unrelated
// garbage. Useful as a cross-check against trie.MemoryStats's own
// unsafe.Sizeof-based estimate, which counts the trie header, node structs
// and edge-label bytes and never accounts for GC/allocator overhead.
func MeasureMemory(build func()) runtime.MemStats {
	runtime.GC()
	runtime.GC()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	build()

	runtime.GC()
	runtime.GC()
	runtime.ReadMemStats(&after)

	after.HeapAlloc -= before.HeapAlloc
	after.TotalAlloc -= before.TotalAlloc
	after.HeapObjects -= before.HeapObjects

	return after
}
