package trie

import "sort"

// PatternSearch returns every stored word matching pattern, sorted
// ascending by byte order. The pattern language has exactly two
// metacharacters: '?' matches exactly one byte, '*' matches zero or more
// bytes; there is no escape syntax. An empty pattern matches nothing. The
// implementation enumerates every stored word and filters with a
// recursive glob matcher, trading match-time work for simplicity — pattern
// strings are short and result sets are small relative to the tree, so
// folding the matcher into the traversal itself is a possible but
// unneeded refinement.
func (t *Trie) PatternSearch(pattern []byte) [][]byte {
	if len(pattern) == 0 {
		return nil
	}

	all := t.WordsWithPrefix(nil)
	var out [][]byte
	for _, w := range all {
		if globMatch(pattern, w) {
			out = append(out, w)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return byteLess(out[i], out[j])
	})
	return out
}

func byteLess(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// globMatch reports whether word matches pattern under the '*'/'?' glob
// language. A terminal '*' short-circuits the remainder of the pattern; a
// leading '*' forces the matcher to try every possible split point.
func globMatch(pattern, word []byte) bool {
	// Fast path: a pattern of only '*' matches everything, including the
	// empty word.
	if len(pattern) == 1 && pattern[0] == '*' {
		return true
	}
	return globMatchAt(pattern, word)
}

func globMatchAt(pattern, word []byte) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Trailing '*' matches any remainder.
			if len(pattern) == 1 {
				return true
			}
			// Try every split of word; recursion depth is bounded by
			// len(word), and patterns in this domain are short.
			for i := 0; i <= len(word); i++ {
				if globMatchAt(pattern[1:], word[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(word) == 0 {
				return false
			}
			pattern = pattern[1:]
			word = word[1:]
		default:
			if len(word) == 0 || word[0] != pattern[0] {
				return false
			}
			pattern = pattern[1:]
			word = word[1:]
		}
	}
	return len(word) == 0
}
