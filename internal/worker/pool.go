// Package worker provides a worker pool for evaluating board files in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/duel-check/internal/engine"
)

// WorkItem represents a board file to be evaluated.
type WorkItem struct {
	Path  string
	Index int // position in the argument list
}

// ProcessResult represents the result of evaluating one board file.
type ProcessResult struct {
	Path    string
	Index   int
	Verdict engine.Verdict
	Error   error
}

// ProcessFunc evaluates a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	items       chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs processFunc on every submitted item.
// Without options it has 1 worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue // drain without evaluating
		}
		p.results <- p.processFunc(item)
	}
}

// SubmitContext queues item, blocking while the buffer is full. It returns
// ctx's error if ctx is done before the item is queued.
func (p *Pool) SubmitContext(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers discard queued items instead of evaluating them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on. It is closed by Close.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
