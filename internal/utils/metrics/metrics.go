// Package metrics tracks coarse counters for asynchronous ingest jobs:
// how many ran, how many failed, and the average time a job took.
package metrics

import (
	"log/slog"
	"sync"
	"time"
)

// Ingest accumulates counters for a stream of ingest jobs run by an
// ingestasync.Pool. Safe for concurrent use from multiple workers.
type Ingest struct {
	mu                 sync.Mutex
	totalJobs          int
	successfulJobs     int
	failedJobs         int
	totalExecutionTime time.Duration
}

// RecordSuccess records a completed ingest job that produced no error.
func (m *Ingest) RecordSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalJobs++
	m.successfulJobs++
	m.totalExecutionTime += duration
}

// RecordFailure records a completed ingest job that returned an error.
func (m *Ingest) RecordFailure(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalJobs++
	m.failedJobs++
	m.totalExecutionTime += duration
}

// Snapshot is a point-in-time copy of the accumulated counters.
type Snapshot struct {
	TotalJobs      int
	SuccessfulJobs int
	FailedJobs     int
	AvgExecTime    time.Duration
}

func (m *Ingest) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var avg time.Duration
	if m.totalJobs > 0 {
		avg = m.totalExecutionTime / time.Duration(m.totalJobs)
	}
	return Snapshot{
		TotalJobs:      m.totalJobs,
		SuccessfulJobs: m.successfulJobs,
		FailedJobs:     m.failedJobs,
		AvgExecTime:    avg,
	}
}

// Log writes the current snapshot to log at info level.
func (m *Ingest) Log(log *slog.Logger) {
	snap := m.Snapshot()
	log.Info("ingest metrics",
		"total_jobs", snap.TotalJobs,
		"successful_jobs", snap.SuccessfulJobs,
		"failed_jobs", snap.FailedJobs,
		"avg_exec_time", snap.AvgExecTime,
	)
}
