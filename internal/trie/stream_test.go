package trie

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestBulkInsertFromStreamBasic(t *testing.T) {
	data := "alpha\nbeta\r\ngamma\r\n\n  delta  \n"

	tr := NewTrie()
	count, err := tr.BulkInsertFromStream(strings.NewReader(data), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}

	got := asSortedStrings(tr.WordsWithPrefix(nil))
	want := []string{"alpha", "beta", "delta", "gamma"}
	sort.Strings(want)
	if !equalStrings(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestBulkInsertFromStreamBufferSizeInvariant(t *testing.T) {
	data := "alpha\nbeta\r\ngamma\r\n\n  delta  \n"

	sizes := []int{1, 2, 3, 4, 7, 1024, DefaultBufferSize}
	var reference []string
	for i, sz := range sizes {
		tr := NewTrie()
		if _, err := tr.BulkInsertFromStream(strings.NewReader(data), sz); err != nil {
			t.Fatalf("buffer size %d: unexpected error: %v", sz, err)
		}
		words := asSortedStrings(tr.WordsWithPrefix(nil))
		if i == 0 {
			reference = words
			continue
		}
		if !equalStrings(words, reference) {
			t.Fatalf("buffer size %d produced %v, want %v", sz, words, reference)
		}
	}
}

func TestBulkInsertFromStreamMatchesLineByLineInsert(t *testing.T) {
	data := "one\ntwo\nthree\nfour\nfive\n"

	streamed := NewTrie()
	if _, err := streamed.BulkInsertFromStream(strings.NewReader(data), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manual := NewTrie()
	for _, line := range []string{"one", "two", "three", "four", "five"} {
		manual.Insert([]byte(line))
	}

	got := asSortedStrings(streamed.WordsWithPrefix(nil))
	want := asSortedStrings(manual.WordsWithPrefix(nil))
	if !equalStrings(got, want) {
		t.Fatalf("streamed words = %v, want %v", got, want)
	}
}

func TestBulkInsertFromStreamCountsDuplicates(t *testing.T) {
	data := "cat\ncat\ncat\n"
	tr := NewTrie()
	count, err := tr.BulkInsertFromStream(strings.NewReader(data), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3 (duplicates still counted as insert attempts)", count)
	}
	if tr.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", tr.Size())
	}
}

func TestBulkInsertFromStreamRejectsNonPositiveBufferSize(t *testing.T) {
	tr := NewTrie()
	if _, err := tr.BulkInsertFromStream(bytes.NewReader(nil), 0); err == nil {
		t.Fatal("expected error for zero buffer size")
	}
	if _, err := tr.BulkInsertFromStream(bytes.NewReader(nil), -1); err == nil {
		t.Fatal("expected error for negative buffer size")
	}
}

func TestBulkInsertFromStreamNoTrailingDelimiter(t *testing.T) {
	data := "onlyoneword"
	tr := NewTrie()
	count, err := tr.BulkInsertFromStream(strings.NewReader(data), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if !tr.Search([]byte("onlyoneword")) {
		t.Fatal("expected final carry to be inserted as a record")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
