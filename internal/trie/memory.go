package trie

import "unsafe"

var (
	nodeStructSize = int(unsafe.Sizeof(node{}))
	trieHeaderSize = int(unsafe.Sizeof(Trie{}))
)

// MemoryStatsResult reports an approximate accounting of the trie's
// in-memory footprint.
type MemoryStatsResult struct {
	TotalBytes    int
	NodeCount     int
	StringBytes   int
	OverheadBytes int
	BytesPerWord  float64
}

// MemoryStats walks the tree once, tallying node count and the total bytes
// occupied by edge-label keys. TotalBytes is the header size plus
// NodeCount*sizeof(node) plus StringBytes. On an empty trie this still
// counts the always-present root node.
func (t *Trie) MemoryStats() MemoryStatsResult {
	nodeCount := 0
	stringBytes := 0

	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nodeCount++
		stringBytes += len(n.key)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i].node)
		}
	}

	total := trieHeaderSize + nodeCount*nodeStructSize + stringBytes
	overhead := total - stringBytes

	var bytesPerWord float64
	if t.wordCount > 0 {
		bytesPerWord = float64(total) / float64(t.wordCount)
	}

	return MemoryStatsResult{
		TotalBytes:    total,
		NodeCount:     nodeCount,
		StringBytes:   stringBytes,
		OverheadBytes: overhead,
		BytesPerWord:  bytesPerWord,
	}
}
