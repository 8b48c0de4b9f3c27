// Package app wires the embedding layer together: the core trie, the
// async ingest pool, and the ingestion history log.
package app

import (
	"context"
	"log/slog"

	"radix-hw/config"
	"radix-hw/internal/history"
	"radix-hw/internal/ingestasync"
	"radix-hw/internal/trie"
)

// App holds the running components a CLI invocation needs: the in-memory
// trie, the async ingest pool, and the durable run history.
type App struct {
	Trie    *trie.Trie
	Pool    *ingestasync.Pool
	History *history.Store
}

// New builds an App from cfg. It opens the history store at
// cfg.HistoryPath and starts an ingest pool sized to GOMAXPROCS; callers
// doing a synchronous ingest can simply not call Pool.Submit.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	store, err := history.Open(log, cfg.HistoryPath)
	if err != nil {
		return nil, err
	}

	pool := ingestasync.New(0)
	pool.Start(ctx)

	return &App{
		Trie:    trie.NewTrie(),
		Pool:    pool,
		History: store,
	}, nil
}

// Close stops the ingest pool and flushes the history store.
func (a *App) Close() error {
	a.Pool.Close()
	return a.History.Close()
}
