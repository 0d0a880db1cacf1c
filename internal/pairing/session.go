// Package pairing simulates the QR-code pairing of a new device: a countdown
// that ends in a random success or failure.
package pairing

import (
	"fmt"
	"sync"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

type Status string

const (
	StatusIdle     Status = "idle"
	StatusScanning Status = "scanning"
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
)

const (
	DefaultCountdown          = 30
	DefaultSuccessProbability = 0.8

	subscriberBuffer = 8

	// maxIDAttempts bounds the draws for a device id nobody holds yet.
	maxIDAttempts = 10
)

type Config struct {
	Countdown          int
	TickInterval       time.Duration
	SuccessProbability float64
}

func (c Config) withDefaults() Config {
	if c.Countdown <= 0 {
		c.Countdown = DefaultCountdown
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.SuccessProbability < 0 || c.SuccessProbability > 1 {
		c.SuccessProbability = DefaultSuccessProbability
	}
	return c
}

type Snapshot struct {
	SessionID string    `json:"sessionId"`
	ViewID    string    `json:"viewId,omitempty"`
	Status    Status    `json:"status"`
	Countdown int       `json:"countdown"`
	DeviceID  string    `json:"deviceId,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is one pairing widget. Its countdown goroutine is the only writer
// besides the user actions, and it never outlives Cancel or Close.
type Session struct {
	id       string
	viewID   string
	cfg      Config
	clock    Clock
	rng      Random
	onPaired func(deviceID string)
	taken    func(deviceID string) bool

	mu          sync.Mutex
	status      Status
	countdown   int
	deviceID    string
	updatedAt   time.Time
	closed      bool
	stopChan    chan struct{}
	doneChan    chan struct{}
	subscribers map[chan Snapshot]struct{}
}

// NewSession returns an idle session. onPaired runs once per successful scan,
// on the session goroutine.
func NewSession(id, viewID string, cfg Config, clock Clock, rng Random, onPaired func(deviceID string)) *Session {
	return &Session{
		id:          id,
		viewID:      viewID,
		cfg:         cfg.withDefaults(),
		clock:       clock,
		rng:         rng,
		onPaired:    onPaired,
		status:      StatusIdle,
		updatedAt:   clock.Now(),
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start begins a scan. Only an idle session can start.
func (s *Session) Start() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.snapshotLocked(), fmt.Errorf("pairing session %s is closed: %w", s.id, domain.ErrInvalidState)
	}
	if s.status != StatusIdle {
		return s.snapshotLocked(), fmt.Errorf("cannot start pairing while %s: %w", s.status, domain.ErrInvalidState)
	}

	s.status = StatusScanning
	s.countdown = s.cfg.Countdown
	s.deviceID = ""

	ticker := s.clock.NewTicker(s.cfg.TickInterval)
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go s.run(ticker, s.stopChan, s.doneChan)

	logger.Infof("Pairing session %s started, %d seconds to scan", s.id, s.countdown)

	return s.publishLocked(), nil
}

// Cancel aborts a running scan and returns once the countdown has stopped.
func (s *Session) Cancel() (Snapshot, error) {
	s.mu.Lock()

	if s.status != StatusScanning {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, fmt.Errorf("cannot cancel pairing while %s: %w", s.status, domain.ErrInvalidState)
	}

	s.status = StatusIdle
	s.countdown = 0
	stop, done := s.detachLocked()
	snap := s.publishLocked()
	s.mu.Unlock()

	halt(stop, done)

	logger.Infof("Pairing session %s cancelled", s.id)

	return snap, nil
}

// Reset returns a finished session to idle so it can be started again.
func (s *Session) Reset() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusIdle:
		return s.snapshotLocked(), nil
	case StatusScanning:
		return s.snapshotLocked(), fmt.Errorf("cannot reset pairing while scanning: %w", domain.ErrInvalidState)
	}

	s.status = StatusIdle
	s.countdown = 0
	s.deviceID = ""

	return s.publishLocked(), nil
}

// Subscribe streams snapshots on every change. Slow readers lose the oldest
// pending snapshot, never the newest. The channel closes with the session or
// when the returned func is called.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, subscriberBuffer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	s.subscribers[ch] = struct{}{}
	ch <- s.snapshotLocked()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}
}

// Close stops any running countdown and releases subscribers.
func (s *Session) Close() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	if s.status == StatusScanning {
		s.status = StatusIdle
		s.countdown = 0
	}
	stop, done := s.detachLocked()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()

	halt(stop, done)
}

func (s *Session) run(ticker Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C():
			if s.tick() {
				return
			}
		case <-stop:
			return
		}
	}
}

// tick advances the countdown and reports whether the scan is over.
func (s *Session) tick() bool {
	s.mu.Lock()

	if s.status != StatusScanning {
		s.mu.Unlock()
		return true
	}

	s.countdown--
	if s.countdown > 0 {
		s.publishLocked()
		s.mu.Unlock()
		return false
	}

	s.countdown = 0
	paired := s.rng.Float64() < s.cfg.SuccessProbability
	if paired {
		s.deviceID, paired = s.newDeviceIDLocked()
		if !paired {
			logger.Warnf("Pairing session %s drew %d device ids that are all taken", s.id, maxIDAttempts)
		}
	}
	if paired {
		s.status = StatusSuccess
	} else {
		s.status = StatusError
	}

	deviceID := s.deviceID
	s.publishLocked()
	s.mu.Unlock()

	if !paired {
		logger.Warnf("Pairing session %s failed", s.id)
		return true
	}

	logger.Infof("Pairing session %s paired %s", s.id, deviceID)
	if s.onPaired != nil {
		s.onPaired(deviceID)
	}

	return true
}

// newDeviceIDLocked draws device ids until one is not taken.
func (s *Session) newDeviceIDLocked() (string, bool) {
	for range maxIDAttempts {
		id := fmt.Sprintf("device_%d", s.rng.IntN(10000))
		if s.taken == nil || !s.taken(id) {
			return id, true
		}
	}
	return "", false
}

func (s *Session) detachLocked() (chan struct{}, chan struct{}) {
	stop, done := s.stopChan, s.doneChan
	s.stopChan, s.doneChan = nil, nil
	return stop, done
}

func halt(stop, done chan struct{}) {
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID: s.id,
		ViewID:    s.viewID,
		Status:    s.status,
		Countdown: s.countdown,
		DeviceID:  s.deviceID,
		UpdatedAt: s.updatedAt,
	}
}

func (s *Session) publishLocked() Snapshot {
	s.updatedAt = s.clock.Now()
	snap := s.snapshotLocked()

	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}

	return snap
}
