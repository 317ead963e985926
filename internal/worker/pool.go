// Package worker provides a worker pool that scores candidate moves in
// parallel.
package worker

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-go/internal/chess"
)

// WorkItem is one candidate move to score. Board is shared between items
// and must be treated as read-only.
type WorkItem struct {
	Board  *chess.Board
	Colour chess.Colour
	Move   chess.Move
	Index  int // Original index for tracking
}

// Result is the score of one candidate move.
type Result struct {
	Move  chess.Move
	Index int
	Score int
	Err   error
}

// ScoreFunc is the function signature for scoring a work item.
type ScoreFunc func(item WorkItem) Result

// Pool manages a pool of workers. A pool is single-use: Start, Submit,
// Close, then drain Results.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan Result
	scoreFunc  ScoreFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
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

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 16.
func NewPool(scoreFunc ScoreFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 16,
		scoreFunc:  scoreFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker scores items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without scoring
		}
		p.resultChan <- p.scoreFunc(item)
	}
}

// Submit submits a work item. This may block if the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop scoring. Queued items are drained unscored.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading scored moves.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// ScoreMoves scores every move on its own pool and returns the results in
// the order of moves. When ctx is cancelled the remaining moves are skipped
// and ctx.Err() is returned with the results gathered so far.
func ScoreMoves(ctx context.Context, board *chess.Board, colour chess.Colour, moves []chess.Move, scoreFunc ScoreFunc, opts ...PoolOption) ([]Result, error) {
	pool := NewPool(scoreFunc, opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(WorkItem{Board: board, Colour: colour, Move: m, Index: i})
		}
	}()

	results := make([]Result, 0, len(moves))
	for r := range pool.Results() {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b Result) int { return a.Index - b.Index })

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
