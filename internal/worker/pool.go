// Package worker provides a worker pool for replaying saved games in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Job is a saved game waiting to be replayed.
type Job struct {
	Index  int    // Submission order, used to restore input order
	Name   string // Where the record came from, for error reports
	Record game.Record
}

// Result is the outcome of replaying one Job.
type Result struct {
	Index    int
	Name     string
	ID       uuid.UUID
	Plies    int
	Moves    chess.History
	Outcome  engine.Outcome
	Position chess.Position // Final position; zero when Err is set
	Err      error
}

// ReplayFunc replays a single job.
type ReplayFunc func(job Job) Result

// Pool runs a fixed number of goroutines over a job channel.
type Pool struct {
	workers    int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool around replay. Default: 1 worker, buffer size of 10.
func New(replay ReplayFunc, opts ...Option) *Pool {
	p := &Pool{
		workers:    1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Channels are sized after options are applied.
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the workers. Once ctx is done, remaining jobs are drained
// without being replayed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.Stopped() || ctx.Err() != nil {
			continue
		}
		p.results <- p.replay(job)
	}
}

// Submit queues a job, blocking while the buffer is full.
// It reports false if the pool has been stopped.
func (p *Pool) Submit(job Job) bool {
	if p.Stopped() {
		return false
	}
	p.jobs <- job
	return true
}

// TrySubmit queues a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip every job not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel, waits for the workers and then closes the
// result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// ReplayAll replays jobs on a new pool and returns the results in Index order.
// Jobs skipped because ctx ended have no result.
func ReplayAll(ctx context.Context, jobs []Job, replay ReplayFunc, opts ...Option) []Result {
	p := New(replay, opts...)
	p.Start(ctx)

	go func() {
		for _, job := range jobs {
			if !p.Submit(job) {
				break
			}
		}
		p.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
