// Package wordstore implements the embedding-layer conveniences the core
// trie deliberately omits: JSON import/export built trivially on top of
// enumerate-all-words, and the one normalization hook the core assigns to
// its caller (case folding).
package wordstore

import (
	"encoding/json"
	"fmt"

	"radix-hw/internal/trie"
)

// Export returns every stored word as a JSON array of strings, in the
// trie's own child-list enumeration order (see trie.Trie.WordsWithPrefix;
// Export does no sorting of its own).
func Export(t *trie.Trie) ([]byte, error) {
	words := t.WordsWithPrefix(nil)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = string(w)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("wordstore: export: %w", err)
	}
	return data, nil
}

// Import decodes a JSON array of strings produced by Export (or compatible
// with it) and inserts each one into t.
func Import(t *trie.Trie, data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return fmt.Errorf("wordstore: import: %w", err)
	}
	for _, w := range words {
		t.Insert([]byte(w))
	}
	return nil
}

// NormalizeCase folds the ASCII letters 'A'-'Z' in w to lowercase, leaving
// every other byte untouched. The core trie never folds case itself (no
// Unicode normalization is one of its non-goals); callers that want
// case-insensitive membership must fold before Insert/Search, and should
// fold consistently with this function so that stored and queried bytes
// agree. This is deliberately not strings.ToLower: that function applies
// Unicode case mapping, which can change a string's byte length and is not
// the byte-reversible ASCII-only fold the core's non-goals call for.
func NormalizeCase(w string) string {
	b := []byte(w)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
