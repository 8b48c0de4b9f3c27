// Package history persists a durable audit log of ingest runs — not a
// serialization format for the trie's node graph (the core trie has none),
// but an ops-facing record
// of when each ingest happened, against which file, and how many records it
// fed to Insert. Backed by github.com/syndtr/goleveldb/leveldb with a
// background batch-write worker draining a channel.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"

	"radix-hw/internal/lib/logger/sl"
)

// Run records the outcome of a single ingest invocation.
type Run struct {
	Path       string `json:"path"`
	BufferSize int    `json:"buffer_size"`
	Records    int    `json:"records"`
	DurationMS int64  `json:"duration_ms"`
	StartedAt  string `json:"started_at"`
}

const (
	batchSize    = 100
	flushTimeout = 2 * time.Second
)

// Store is a background-flushed log of Run records backed by leveldb.
type Store struct {
	log       *slog.Logger
	db        *leveldb.DB
	writeChan chan Run
	wg        sync.WaitGroup
	seq       uint64
}

// Open opens (or creates) the history store at path.
func Open(log *slog.Logger, path string) (*Store, error) {
	const op = "history.Open"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Store{
		log:       log,
		db:        db,
		writeChan: make(chan Run, batchSize*2),
	}

	// Continue numbering after the last run already stored, so a reopened
	// store appends instead of overwriting earlier runs.
	iter := db.NewIterator(nil, nil)
	if iter.Last() {
		fmt.Sscanf(string(iter.Key()), "run:%d", &s.seq)
	}
	iter.Release()

	s.wg.Add(1)
	go s.writeWorker()

	return s, nil
}

// Record enqueues run for durable storage. It blocks only if the internal
// queue is full, and honors ctx cancellation while waiting.
func (s *Store) Record(ctx context.Context, run Run) error {
	select {
	case s.writeChan <- run:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) writeWorker() {
	defer s.wg.Done()

	batch := new(leveldb.Batch)
	ticker := time.NewTicker(flushTimeout)
	defer ticker.Stop()

	flush := func() {
		if batch.Len() == 0 {
			return
		}
		if err := s.db.Write(batch, nil); err != nil {
			s.log.Error("failed to flush ingest history batch", sl.Err(err))
		}
		batch = new(leveldb.Batch)
	}

	for {
		select {
		case run, ok := <-s.writeChan:
			if !ok {
				flush()
				return
			}
			s.seq++
			key := fmt.Sprintf("run:%020d", s.seq)
			data, err := json.Marshal(run)
			if err != nil {
				s.log.Error("failed to marshal ingest run", sl.Err(err))
				continue
			}
			batch.Put([]byte(key), data)
			if batch.Len() >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// Recent returns up to limit most recently recorded runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()

	var runs []Run
	for ok := iter.Last(); ok && len(runs) < limit; ok = iter.Prev() {
		var run Run
		if err := json.Unmarshal(iter.Value(), &run); err != nil {
			return nil, fmt.Errorf("history.Recent: %w", err)
		}
		runs = append(runs, run)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("history.Recent: %w", err)
	}
	return runs, nil
}

// Close flushes any pending writes and closes the underlying database.
func (s *Store) Close() error {
	close(s.writeChan)
	s.wg.Wait()
	return s.db.Close()
}
