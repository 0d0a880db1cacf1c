package pairing

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

// PairedFunc is told which view paired which device.
type PairedFunc func(viewID, deviceID string)

// Manager owns the pairing sessions opened by the devices screen.
type Manager struct {
	cfg      Config
	clock    Clock
	rng      Random
	onPaired PairedFunc
	taken    func(deviceID string) bool

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(cfg Config, clock Clock, rng Random) *Manager {
	return &Manager{
		cfg:      cfg.withDefaults(),
		clock:    clock,
		rng:      rng,
		sessions: make(map[string]*Session),
	}
}

// OnPaired registers the function run after every successful scan. It must
// be set before the first session opens.
func (m *Manager) OnPaired(fn PairedFunc) {
	m.onPaired = fn
}

// SkipTakenIDs registers the check for device ids already in use. A scan
// that cannot find a free id ends in error. It must be set before the first
// session opens.
func (m *Manager) SkipTakenIDs(taken func(deviceID string) bool) {
	m.taken = taken
}

// Open creates an idle session for a view.
func (m *Manager) Open(viewID string) *Session {
	id := uuid.NewString()

	session := NewSession(id, viewID, m.cfg, m.clock, m.rng, func(deviceID string) {
		if m.onPaired != nil {
			m.onPaired(viewID, deviceID)
		}
	})
	session.taken = m.taken

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	logger.Debugf("Opened pairing session %s for view %s", id, viewID)

	return session
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("pairing session %s: %w", id, domain.ErrNotFound)
	}
	return session, nil
}

// Close stops a session and forgets it.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("pairing session %s: %w", id, domain.ErrNotFound)
	}

	session.Close()
	return nil
}

// CloseAll stops every session. Used on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	if len(sessions) > 0 {
		logger.Infof("Closed %d pairing sessions", len(sessions))
	}
}

// Sweep closes sessions that are not scanning and have not changed for at
// least idle. It returns how many were closed.
func (m *Manager) Sweep(idle time.Duration) int {
	now := m.clock.Now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		snap := s.Snapshot()
		if snap.Status == StatusScanning || now.Sub(snap.UpdatedAt) < idle {
			continue
		}
		stale = append(stale, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

type ManagerStatus struct {
	Sessions int `json:"sessions"`
	Scanning int `json:"scanning"`
}

func (m *Manager) Status() ManagerStatus {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	status := ManagerStatus{Sessions: len(sessions)}
	for _, s := range sessions {
		if s.Snapshot().Status == StatusScanning {
			status.Scanning++
		}
	}
	return status
}
