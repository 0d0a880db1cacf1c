package pairing

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

func TestManager_OpenGetClose(t *testing.T) {
	m := NewManager(Config{Countdown: 2}, &fakeClock{}, fixedRandom{f: 0.1})

	s := m.Open("view-1")
	got, err := m.Get(s.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatal("expected the same session")
	}
	if got.Snapshot().ViewID != "view-1" {
		t.Errorf("expected view-1, got %q", got.Snapshot().ViewID)
	}

	if err := m.Close(s.ID()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := m.Get(s.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := m.Close(s.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second close, got %v", err)
	}
}

func TestManager_OnPairedReceivesView(t *testing.T) {
	clock := &fakeClock{}
	m := NewManager(Config{Countdown: 1, TickInterval: time.Second}, clock, fixedRandom{f: 0.1, n: 7})

	type pairedEvent struct{ viewID, deviceID string }
	events := make(chan pairedEvent, 1)
	m.OnPaired(func(viewID, deviceID string) {
		events <- pairedEvent{viewID, deviceID}
	})

	s := m.Open("view-9")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.last().fire(1)

	select {
	case ev := <-events:
		if ev.viewID != "view-9" || ev.deviceID != "device_7" {
			t.Errorf("unexpected event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onPaired not called")
	}

	m.CloseAll()
}

func TestManager_StatusCountsScanning(t *testing.T) {
	m := NewManager(Config{Countdown: 5}, &fakeClock{}, fixedRandom{f: 0.1})

	a := m.Open("a")
	m.Open("b")
	if _, err := a.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	status := m.Status()
	if status.Sessions != 2 || status.Scanning != 1 {
		t.Errorf("unexpected status %+v", status)
	}

	m.CloseAll()
	if m.Status().Sessions != 0 {
		t.Error("expected no sessions after CloseAll")
	}
}

func TestManager_SweepKeepsScanningSessions(t *testing.T) {
	m := NewManager(Config{Countdown: 5}, &fakeClock{}, fixedRandom{f: 0.1})
	defer m.CloseAll()

	scanning := m.Open("a")
	idle := m.Open("b")
	if _, err := scanning.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if n := m.Sweep(time.Minute); n != 0 {
		t.Errorf("expected fresh sessions to survive, swept %d", n)
	}
	if n := m.Sweep(0); n != 1 {
		t.Fatalf("expected one session swept, got %d", n)
	}
	if _, err := m.Get(idle.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected idle session gone, got %v", err)
	}
	if _, err := m.Get(scanning.ID()); err != nil {
		t.Errorf("expected scanning session kept, got %v", err)
	}
}

func TestManager_SkipTakenIDsReachesSessions(t *testing.T) {
	clock := &fakeClock{}
	m := NewManager(Config{Countdown: 1, TickInterval: time.Second}, clock, fixedRandom{f: 0.1, n: 7})
	defer m.CloseAll()

	m.SkipTakenIDs(func(id string) bool { return id == "device_7" })
	var calls atomic.Int32
	m.OnPaired(func(string, string) { calls.Add(1) })

	s := m.Open("view-1")
	updates, unsubscribe := s.Subscribe()
	defer unsubscribe()

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.last().fire(1)
	waitFor(t, updates, StatusError)

	if calls.Load() != 0 {
		t.Errorf("expected no paired callback, got %d", calls.Load())
	}
}
