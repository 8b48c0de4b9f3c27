// Package ingestasync wraps the core trie's synchronous
// BulkInsertFromStream on a worker-pool goroutine, the asynchronous
// file-ingest entry point the trie core itself deliberately does not
// provide (the core is single-threaded and non-suspending; see
// radix-hw/internal/trie). Only this package, never the core, owns the
// concurrency boundary around a given *trie.Trie.
package ingestasync

import "radix-hw/internal/trie"

// IngestResult is delivered to a Submit callback once a queued ingest
// completes.
type IngestResult struct {
	Path       string
	BufferSize int
	Records    int
	Err        error
}

// job is one queued ingest request.
type job struct {
	trie       *trie.Trie
	path       string
	bufferSize int
	callback   func(IngestResult)
}
