package trie

import (
	"reflect"
	"sort"
	"testing"
)

func TestPatternSearch(t *testing.T) {
	tr := NewTrie()
	words := []string{"cat", "car", "card", "care", "careful", "dog"}
	for _, w := range words {
		tr.Insert([]byte(w))
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"ca*", []string{"car", "card", "care", "careful", "cat"}},
		{"c?r", []string{"car"}},
		{"*", []string{"car", "card", "care", "careful", "cat", "dog"}},
		{"", nil},
		{"zz*", nil},
	}

	for _, tc := range tests {
		got := asStrings(tr.PatternSearch([]byte(tc.pattern)))
		if tc.want == nil && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("PatternSearch(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestPatternSearchOrderMatchesSortedPrefixFilter(t *testing.T) {
	tr := NewTrie()
	words := []string{"alpha", "alpine", "album", "beta", "bear", "cab"}
	for _, w := range words {
		tr.Insert([]byte(w))
	}

	pattern := "al*"
	got := asStrings(tr.PatternSearch([]byte(pattern)))

	all := asStrings(tr.WordsWithPrefix(nil))
	var want []string
	for _, w := range all {
		if globMatch([]byte(pattern), []byte(w)) {
			want = append(want, w)
		}
	}
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("PatternSearch order mismatch: got %v, want %v", got, want)
	}
}

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern, word string
		want          bool
	}{
		{"*", "", true},
		{"*", "anything", true},
		{"a*b", "ab", true},
		{"a*b", "axxxb", true},
		{"a*b", "axxxc", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"a?c", "abbc", false},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"*abc", "xxabc", true},
		{"abc*", "abcxyz", true},
	}
	for _, tc := range tests {
		got := globMatch([]byte(tc.pattern), []byte(tc.word))
		if got != tc.want {
			t.Errorf("globMatch(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}
