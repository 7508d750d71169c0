// Package scheduler runs named polling jobs whose behaviour can be swapped while they run.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	ErrUnknownJob      = errors.New("unknown job")
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrStopped         = errors.New("scheduler stopped")
)

// Func is one run of a job.
type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       atomic.Pointer[Func]
	trigger  chan struct{}
	cancel   context.CancelFunc
	once     sync.Once
	done     chan struct{}
}

func (j *job) stop() {
	j.once.Do(j.cancel)
}

// Scheduler owns every polling timer of the process. Runs of one job never overlap,
// and a fired timer always invokes the latest function stored for the job.
type Scheduler struct {
	metrics Metrics
	logger  *zap.Logger

	mu      sync.Mutex
	jobs    map[string]*job
	retired map[string]<-chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

func New(metrics Metrics, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		metrics: metrics,
		logger:  logger.Named("scheduler"),
		jobs:    make(map[string]*job),
		retired: make(map[string]<-chan struct{}),
	}
}

// Schedule runs fn now and then every interval until ctx ends or the job is cancelled.
// Scheduling an existing name cancels the previous job first; the new job starts running
// only after the previous one has returned.
func (s *Scheduler) Schedule(ctx context.Context, name string, interval time.Duration, fn Func) error {
	if interval <= 0 {
		return fmt.Errorf("schedule %s: %w", name, ErrInvalidInterval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fmt.Errorf("schedule %s: %w", name, ErrStopped)
	}

	prev := s.retired[name]
	delete(s.retired, name)
	if old, ok := s.jobs[name]; ok {
		old.stop()
		prev = old.done
	}

	jobCtx, cancel := context.WithCancel(ctx)
	j := &job{
		name:     name,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	j.fn.Store(&fn)
	s.jobs[name] = j

	s.wg.Add(1)
	go s.loop(jobCtx, j, prev)

	return nil
}

// Update replaces the behaviour of a running job. The next run uses fn.
func (s *Scheduler) Update(name string, fn Func) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("update %s: %w", name, ErrUnknownJob)
	}
	j.fn.Store(&fn)
	return nil
}

// Trigger asks for an out-of-band run. Requests made while one is pending are coalesced.
func (s *Scheduler) Trigger(name string) bool {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case j.trigger <- struct{}{}:
	default:
	}
	return true
}

// Cancel stops a job. It does not wait for a run in progress.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[name]
	if !ok {
		return false
	}
	j.stop()
	delete(s.jobs, name)
	s.retired[name] = j.done
	return true
}

// Jobs returns the names of scheduled jobs.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// Stop cancels every job and waits for their goroutines to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for name, j := range s.jobs {
		j.stop()
		delete(s.jobs, name)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j *job, prev <-chan struct{}) {
	defer s.wg.Done()
	defer close(j.done)
	defer j.stop()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			return
		}
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		s.run(ctx, j)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-j.trigger:
		}
	}
}

func (s *Scheduler) run(ctx context.Context, j *job) {
	if ctx.Err() != nil {
		return
	}
	fn := *j.fn.Load()

	started := time.Now()
	err := fn(ctx)
	s.metrics.ObserveRun(j.name, err, started)

	if err != nil && ctx.Err() == nil {
		s.logger.Warn("job run failed", zap.String("job", j.name), zap.Error(err))
	}
}
