package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

// Sweeper matches the Sweep methods of pairing.Manager and
// viewstate.Controller.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// Target is one store the scheduler sweeps, with its own idle timeout.
type Target struct {
	Name    string
	Sweeper Sweeper
	Idle    time.Duration
}

// Scheduler periodically drops per-view leftovers: pairing sessions opened
// but never scanned or left on a result, and view states of tabs that went
// away without calling DELETE /views.
type Scheduler struct {
	targets  []Target
	interval time.Duration

	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
	mu       sync.RWMutex

	lastRunAt time.Time
	runsCount int64
	swept     map[string]int64
}

func NewScheduler(interval time.Duration, targets ...Target) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	for i := range targets {
		if targets[i].Idle <= 0 {
			targets[i].Idle = 10 * time.Minute
		}
	}
	return &Scheduler{
		targets:  targets,
		interval: interval,
		swept:    make(map[string]int64, len(targets)),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()

	if s.running {
		s.mu.Unlock()
		logger.Warnf("Sweeper is already running")
		return nil
	}

	s.running = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	stop, done := s.stopChan, s.doneChan
	s.mu.Unlock()

	logger.Infof("Starting sweeper for %d stores with interval %v", len(s.targets), s.interval)

	go s.run(ctx, stop, done)

	return nil
}

func (s *Scheduler) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()

		case <-stop:
			logger.Debugf("Sweeper received stop signal")
			return

		case <-ctx.Done():
			logger.Warnf("Sweeper context cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep() {
	counts := make([]int, len(s.targets))
	for i, t := range s.targets {
		counts[i] = t.Sweeper.Sweep(t.Idle)
	}

	s.mu.Lock()
	s.lastRunAt = time.Now()
	s.runsCount++
	for i, t := range s.targets {
		s.swept[t.Name] += int64(counts[i])
	}
	run := s.runsCount
	s.mu.Unlock()

	for i, t := range s.targets {
		if counts[i] > 0 {
			logger.Infof("[Sweep #%d] Dropped %d idle %s", run, counts[i], t.Name)
		}
	}
}

func (s *Scheduler) Stop() error {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()
		logger.Warnf("Sweeper is not running")
		return nil
	}

	s.running = false
	stopChan := s.stopChan
	doneChan := s.doneChan
	s.mu.Unlock()

	close(stopChan)
	<-doneChan

	logger.Infof("Sweeper stopped")
	return nil
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) GetStatus() SchedulerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := SchedulerStatus{
		Running:   s.running,
		LastRunAt: s.lastRunAt,
		RunsCount: s.runsCount,
		Interval:  s.interval.String(),
		Targets:   make(map[string]TargetStatus, len(s.targets)),
	}
	for _, t := range s.targets {
		status.Targets[t.Name] = TargetStatus{Swept: s.swept[t.Name], IdleTimeout: t.Idle.String()}
	}

	if s.running && !s.lastRunAt.IsZero() {
		status.NextRunAt = s.lastRunAt.Add(s.interval)
	}

	return status
}

type SchedulerStatus struct {
	Running   bool                    `json:"running"`
	LastRunAt time.Time               `json:"lastRunAt,omitempty"`
	NextRunAt time.Time               `json:"nextRunAt,omitempty"`
	RunsCount int64                   `json:"runsCount"`
	Interval  string                  `json:"interval"`
	Targets   map[string]TargetStatus `json:"targets"`
}

type TargetStatus struct {
	Swept       int64  `json:"swept"`
	IdleTimeout string `json:"idleTimeout"`
}
