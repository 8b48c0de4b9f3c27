// Command radixd loads a word list into an in-memory compressed trie,
// reports size/height/memory statistics, runs one query from flags, and
// logs the run to a durable history store on a graceful SIGINT/SIGTERM
// shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"radix-hw/config"
	"radix-hw/internal/app"
	"radix-hw/internal/history"
	"radix-hw/internal/ingestasync"
	"radix-hw/internal/lib/logger/sl"
	"radix-hw/internal/trie"
	"radix-hw/internal/utils"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		async       bool
		queryKind   string
		queryArg    string
		measureHeap bool
	)
	flag.BoolVar(&async, "async", false, "ingest through the async worker pool instead of synchronously")
	flag.StringVar(&queryKind, "query", "", "query to run after ingest: search, prefix, or pattern")
	flag.StringVar(&queryArg, "arg", "", "argument for -query (word, prefix, or glob pattern)")
	flag.BoolVar(&measureHeap, "measure-heap", false, "cross-check trie.MemoryStats against actual runtime heap delta")

	// MustLoad registers its own flags and parses the command line, so the
	// flags above must already be defined when it runs.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("radixd starting", "env", cfg.Env, "wordlist", cfg.Ingest.DefaultPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("failed to start app", sl.Err(err))
		os.Exit(1)
	}

	started := time.Now()
	runIngest(ctx, log, application, cfg, async)
	elapsed := time.Since(started)
	log.Info("ingest complete", "duration", utils.FormatDuration(elapsed))

	printStats(log, application, measureHeap)

	if queryKind != "" {
		runQuery(log, application, queryKind, queryArg)
	}

	application.Pool.Metrics.Log(log)

	// Block until SIGINT/SIGTERM; no further queries are served while
	// waiting. The signal triggers a graceful shutdown below.
	<-ctx.Done()

	if err := application.Close(); err != nil {
		log.Error("error during shutdown", sl.Err(err))
	}
	log.Info("radixd stopped")
}

func runIngest(ctx context.Context, log *slog.Logger, a *app.App, cfg *config.Config, async bool) {
	path := cfg.Ingest.DefaultPath
	startedAt := time.Now()

	if !async {
		f, err := os.Open(path)
		if err != nil {
			log.Error("failed to open wordlist", sl.Err(err))
			os.Exit(1)
		}
		defer f.Close()

		n, err := a.Trie.BulkInsertFromStream(f, cfg.Ingest.BufferSize)
		if err != nil {
			log.Error("ingest failed", sl.Err(err))
			os.Exit(1)
		}
		recordRun(ctx, log, a, path, cfg.Ingest.BufferSize, n, startedAt)
		return
	}

	done := make(chan ingestasync.IngestResult, 1)
	a.Pool.Submit(a.Trie, path, cfg.Ingest.BufferSize, func(r ingestasync.IngestResult) {
		done <- r
	})
	r := <-done
	if r.Err != nil {
		log.Error("async ingest failed", sl.Err(r.Err))
		os.Exit(1)
	}
	recordRun(ctx, log, a, path, cfg.Ingest.BufferSize, r.Records, startedAt)
}

func recordRun(ctx context.Context, log *slog.Logger, a *app.App, path string, bufferSize, records int, startedAt time.Time) {
	run := history.Run{
		Path:       path,
		BufferSize: bufferSize,
		Records:    records,
		DurationMS: time.Since(startedAt).Milliseconds(),
		StartedAt:  startedAt.UTC().Format(time.RFC3339),
	}
	if err := a.History.Record(ctx, run); err != nil {
		log.Error("failed to record ingest history", sl.Err(err))
	}
}

func printStats(log *slog.Logger, a *app.App, measureHeap bool) {
	height := a.Trie.HeightStats()
	words := a.Trie.WordMetrics()
	mem := a.Trie.MemoryStats()

	log.Info("height_stats",
		"min", height.Min, "max", height.Max, "mean", height.Mean, "mode", height.Mode,
	)
	log.Info("word_metrics",
		"min", words.Min, "max", words.Max, "mean", words.Mean, "mode", words.Mode, "total_chars", words.TotalChars,
	)
	log.Info("memory_stats",
		"node_count", mem.NodeCount, "total_bytes", mem.TotalBytes, "bytes_per_word", mem.BytesPerWord,
	)

	if measureHeap {
		words := a.Trie.WordsWithPrefix(nil)
		var rebuilt *trie.Trie
		delta := utils.MeasureMemory(func() {
			rebuilt = trie.NewTrie()
			for _, w := range words {
				rebuilt.Insert(w)
			}
		})
		log.Info("runtime_heap_delta", "heap_alloc", delta.HeapAlloc, "heap_objects", delta.HeapObjects, "rebuilt_size", rebuilt.Size())
	}
}

func runQuery(log *slog.Logger, a *app.App, kind, arg string) {
	switch kind {
	case "search":
		log.Info("search", "word", arg, "found", a.Trie.Search([]byte(arg)))
	case "prefix":
		words := a.Trie.WordsWithPrefix([]byte(arg))
		fmt.Printf("words_with_prefix %q: %d matches\n", arg, len(words))
		for _, w := range words {
			fmt.Println(string(w))
		}
	case "pattern":
		words := a.Trie.PatternSearch([]byte(arg))
		fmt.Printf("pattern_search %q: %d matches\n", arg, len(words))
		for _, w := range words {
			fmt.Println(string(w))
		}
	default:
		log.Warn("unknown query kind, skipping", "kind", kind)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}
