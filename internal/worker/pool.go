// Package worker runs FEN log conversions on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// WorkItem is one FEN log to convert.
type WorkItem struct {
	// Source names the log in results and errors, usually its path.
	Source string

	// Lines holds the log when it was read by the submitter. When nil the
	// process function reads Source itself.
	Lines []string

	// Index is the submission order, used to put results back in order.
	Index int
}

// ProcessResult is the outcome of converting one log.
type ProcessResult struct {
	Source string
	Index  int

	// Game is the reconstructed game; nil when Error is set.
	Game *chess.Game

	// Final is the last position of the log.
	Final *chess.Position

	// Skipped lists the transitions the reconstruction could not explain.
	Skipped []error

	ShouldOutput bool   // The game passed the filters
	OutputToDup  bool   // The game repeats an earlier one
	Reason       string // Why the game was filtered out, for the log

	Error error
}

// ProcessFunc converts a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a set of workers and collects their results.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of ten unless the
// options say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes the workers discard the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the channel closes and hands them to fn in
// Index order, starting at zero. Results are held back until every lower
// index has been delivered; any still held when the channel closes (because
// an index never arrived) are delivered in index order at the end.
func InOrder(results <-chan ProcessResult, fn func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(ready)
			next++
		}
	}

	for len(pending) > 0 {
		lowest := -1
		for idx := range pending {
			if lowest < 0 || idx < lowest {
				lowest = idx
			}
		}
		fn(pending[lowest])
		delete(pending, lowest)
	}
}
