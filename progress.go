package searchlight

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ProgressObserver is notified as a stream produces DSMs.
// Implement this interface to drive a progress bar or export metrics.
//
// Example:
//
//	type barObserver struct{ bar *progressbar.ProgressBar }
//
//	func (b *barObserver) Start(total int) { b.bar.ChangeMax(total) }
//	func (b *barObserver) Advance(step int) { b.bar.Add(step) }
//	func (b *barObserver) Finish()          { b.bar.Finish() }
type ProgressObserver interface {
	// Start is called once before the first DSM with the number of patches.
	Start(total int)

	// Advance is called after each DSM is handed to the consumer.
	Advance(step int)

	// Finish is called once when the stream ends, for any reason.
	Finish()
}

// NoopProgress is a no-op implementation of ProgressObserver.
type NoopProgress struct{}

func (NoopProgress) Start(int)   {}
func (NoopProgress) Advance(int) {}
func (NoopProgress) Finish()     {}

// BasicProgress records progress in atomic counters.
// Useful for tests and polling from another goroutine.
type BasicProgress struct {
	Total    atomic.Int64
	Done     atomic.Int64
	Finished atomic.Bool
}

// Start implements ProgressObserver.
func (b *BasicProgress) Start(total int) { b.Total.Store(int64(total)) }

// Advance implements ProgressObserver.
func (b *BasicProgress) Advance(step int) { b.Done.Add(int64(step)) }

// Finish implements ProgressObserver.
func (b *BasicProgress) Finish() { b.Finished.Store(true) }

// DefaultProgressInterval is the minimum time between progress log lines.
const DefaultProgressInterval = time.Second

// LogProgress logs progress through a Logger, at most once per interval.
type LogProgress struct {
	logger    *Logger
	sometimes rate.Sometimes
	total     atomic.Int64
	done      atomic.Int64
	started   time.Time
}

// NewLogProgress creates a LogProgress that logs at info level.
func NewLogProgress(logger *Logger) *LogProgress {
	return NewLogProgressInterval(logger, DefaultProgressInterval)
}

// NewLogProgressInterval creates a LogProgress with a custom throttle interval.
func NewLogProgressInterval(logger *Logger, interval time.Duration) *LogProgress {
	if logger == nil {
		logger = NoopLogger()
	}
	return &LogProgress{
		logger:    logger,
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// Start implements ProgressObserver.
func (p *LogProgress) Start(total int) {
	p.total.Store(int64(total))
	p.done.Store(0)
	p.started = time.Now()
}

// Advance implements ProgressObserver.
func (p *LogProgress) Advance(step int) {
	done := p.done.Add(int64(step))
	p.sometimes.Do(func() {
		p.log(done)
	})
}

// Finish implements ProgressObserver.
func (p *LogProgress) Finish() {
	p.log(p.done.Load())
}

func (p *LogProgress) log(done int64) {
	total := p.total.Load()
	var pct float64
	if total > 0 {
		pct = 100 * float64(done) / float64(total)
	}
	p.logger.InfoContext(context.Background(), "searchlight progress",
		"done", done,
		"total", total,
		"percent", pct,
		"elapsed", time.Since(p.started).Round(time.Millisecond),
	)
}
