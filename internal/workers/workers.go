// Package workers runs CPU-heavy proving jobs on a dedicated pool, off the
// caller's goroutine.
//
// Proof generation is the dominant latency source of the protocol (seconds,
// not milliseconds). A caller abandons a job by cancelling its context; the
// running computation is NOT interrupted — the backend cannot be killed
// mid-proof safely — its result is simply discarded when it returns.
package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/veilvault/veilvault/internal/logger"
)

// ErrPoolClosed is returned for submissions after Shutdown.
var ErrPoolClosed = errors.New("worker pool closed")

// Job is a unit of proving work.
type Job func() (any, error)

type task struct {
	job Job
	out chan result
}

type result struct {
	value any
	err   error
}

// Pool is a fixed-size worker pool for proving jobs.
type Pool struct {
	tasks  chan task
	wg     sync.WaitGroup
	logger *logger.Logger

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

// NewPool starts size workers. size <= 0 defaults to 1: proving is memory
// hungry and parallel proofs rarely pay off on client hardware.
func NewPool(size int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		tasks:  make(chan task),
		logger: log,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				v, err := t.job()
				// Buffered channel: if the submitter gave up, the
				// result is dropped here instead of blocking the worker.
				t.out <- result{value: v, err: err}
			}
		}()
	}
	return p
}

// Submit runs job on the pool and waits for its result or for ctx. When ctx
// expires first the job keeps running to completion but its result is
// discarded; no state is shared with the caller after abandonment.
func (p *Pool) Submit(ctx context.Context, job Job) (any, error) {
	// The senders count is raised under the same lock that guards closed,
	// so Shutdown either sees this submission and waits for its send, or
	// this submission sees closed and never touches the channel.
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	p.senders.Add(1)
	p.mu.Unlock()

	t := task{job: job, out: make(chan result, 1)}

	select {
	case p.tasks <- t:
		p.senders.Done()
	case <-ctx.Done():
		p.senders.Done()
		return nil, ctx.Err()
	}

	select {
	case r := <-t.out:
		return r.value, r.err
	case <-ctx.Done():
		p.logger.Warn().Msg("proving job abandoned by caller; result will be discarded")
		return nil, ctx.Err()
	}
}

// Shutdown stops accepting work and blocks until running jobs finish.
// Submissions already past the closed check are drained, not panicked on:
// the task channel closes only after every pending send has landed.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.senders.Wait()
	close(p.tasks)
	p.wg.Wait()
}
