package batch

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports how many queries of a batch have completed.
// It is safe for concurrent use.
type ProgressTracker struct {
	writer       io.Writer
	total        int
	current      int
	interval     time.Duration
	lastReported time.Time
	startTime    time.Time
	started      bool
	mu           sync.Mutex
}

// NewProgressTracker creates a tracker that writes to writer at most once
// per interval. A zero interval reports on every update.
func NewProgressTracker(writer io.Writer, total int, interval time.Duration) *ProgressTracker {
	return &ProgressTracker{
		writer:   writer,
		total:    total,
		interval: interval,
	}
}

// Start begins tracking progress.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.lastReported = p.startTime
	p.started = true
	p.current = 0
}

// Increment increases the completed count by delta.
func (p *ProgressTracker) Increment(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current = min(p.current+delta, p.total)

	if now := time.Now(); now.Sub(p.lastReported) >= p.interval {
		p.report()
		p.lastReported = now
	}
}

// Current returns the completed count.
func (p *ProgressTracker) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Finish marks the batch as complete and prints the final line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.report()
	fmt.Fprintln(p.writer)
	p.started = false
}

// Elapsed returns the time since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}
	return time.Since(p.startTime)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressTracker) report() {
	rate := 0.0
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 {
		rate = float64(p.current) / elapsed
	}

	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.current) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rProgress: %d/%d (%.1f%%) - %.1f queries/s",
		p.current, p.total, percentage, rate)
}
