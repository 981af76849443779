package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick fires while the pool queue is full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Scheduler runs jobs at fixed intervals by enqueueing them onto a worker
// pool. A tick that finds the queue full is skipped rather than queued up
// behind the stalled work.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval
// from now
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					logger.FromContext(context.Background()).Warn(LogMsgJobSkipped)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
