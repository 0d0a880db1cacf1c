package viewstate

import (
	"context"
	"encoding/json"
	"maps"
	"sync"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

// SnapshotCache mirrors view states outside the process. *redis.Client
// implements it.
type SnapshotCache interface {
	CacheViewState(ctx context.Context, viewID, screen string, snapshot []byte) error
	GetCachedViewState(ctx context.Context, viewID, screen string) ([]byte, error)
	ClearViewStates(ctx context.Context, viewID string) (int, error)
}

type key struct {
	viewID string
	screen Screen
}

// Controller owns the view state of every (view, screen) pair.
type Controller struct {
	mu     sync.Mutex
	states map[key]State
	cache  SnapshotCache
	now    func() time.Time
}

// NewController returns a controller. cache may be nil.
func NewController(cache SnapshotCache) *Controller {
	return &Controller{
		states: make(map[key]State),
		cache:  cache,
		now:    time.Now,
	}
}

func (c *Controller) State(ctx context.Context, viewID string, screen Screen) (State, error) {
	if _, err := ParseScreen(string(screen)); err != nil {
		return State{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx, key{viewID, screen}), nil
}

// Apply runs a navigation action on one screen of a view.
func (c *Controller) Apply(ctx context.Context, viewID string, screen Screen, action Action) (State, error) {
	return c.update(ctx, viewID, screen, func(s State) (State, error) {
		return Transition(s, action)
	})
}

// SetQuery replaces the list query kept for a screen. An empty sort keeps the
// current one.
func (c *Controller) SetQuery(ctx context.Context, viewID string, screen Screen, q listview.Query) (State, error) {
	return c.update(ctx, viewID, screen, func(s State) (State, error) {
		if q.Sort.Key == "" {
			q.Sort = s.Query.Sort
		}
		s.Query = q
		return s, nil
	})
}

func (c *Controller) ToggleSort(ctx context.Context, viewID string, screen Screen, field string) (State, error) {
	return c.update(ctx, viewID, screen, func(s State) (State, error) {
		s.Query.Sort = s.Query.Sort.Toggle(field)
		return s, nil
	})
}

// ToggleSecret flips the visibility of one credential secret for a view.
func (c *Controller) ToggleSecret(ctx context.Context, viewID, credentialID string) (State, error) {
	return c.update(ctx, viewID, ScreenCredentials, func(s State) (State, error) {
		revealed := maps.Clone(s.RevealedSecrets)
		if revealed == nil {
			revealed = make(map[string]bool)
		}
		if revealed[credentialID] {
			delete(revealed, credentialID)
		} else {
			revealed[credentialID] = true
		}
		s.RevealedSecrets = revealed
		return s, nil
	})
}

// Forget drops every screen state of a view.
func (c *Controller) Forget(ctx context.Context, viewID string) {
	c.mu.Lock()
	for k := range c.states {
		if k.viewID == viewID {
			delete(c.states, k)
		}
	}
	c.mu.Unlock()

	if c.cache == nil {
		return
	}
	if n, err := c.cache.ClearViewStates(ctx, viewID); err != nil {
		logger.Warnf("Failed to clear cached view states for %s: %v", viewID, err)
	} else {
		logger.Debugf("Cleared %d cached view states for %s", n, viewID)
	}
}

// Sweep drops in-memory screen states unchanged for at least idle and
// returns how many were dropped. Mirrored snapshots expire on their own TTL.
func (c *Controller) Sweep(idle time.Duration) int {
	cutoff := c.now().Add(-idle)

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, s := range c.states {
		if s.UpdatedAt.After(cutoff) {
			continue
		}
		delete(c.states, k)
		n++
	}
	return n
}

func (c *Controller) update(ctx context.Context, viewID string, screen Screen, fn func(State) (State, error)) (State, error) {
	if _, err := ParseScreen(string(screen)); err != nil {
		return State{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := key{viewID, screen}
	current := c.load(ctx, k)

	next, err := fn(current)
	if err != nil {
		return current, err
	}

	next.UpdatedAt = c.now()
	c.states[k] = next
	c.mirror(ctx, k, next)

	return next, nil
}

// load must be called with c.mu held.
func (c *Controller) load(ctx context.Context, k key) State {
	if s, ok := c.states[k]; ok {
		return s
	}

	if c.cache != nil {
		raw, err := c.cache.GetCachedViewState(ctx, k.viewID, string(k.screen))
		if err != nil {
			logger.Warnf("Failed to read cached view state %s/%s: %v", k.viewID, k.screen, err)
		} else if raw != nil {
			var s State
			if err := json.Unmarshal(raw, &s); err == nil && s.Screen == k.screen {
				c.states[k] = s
				return s
			}
			logger.Warnf("Discarding unreadable cached view state %s/%s", k.viewID, k.screen)
		}
	}

	return Initial(k.screen)
}

func (c *Controller) mirror(ctx context.Context, k key, s State) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		logger.Warnf("Failed to encode view state %s/%s: %v", k.viewID, k.screen, err)
		return
	}

	if err := c.cache.CacheViewState(ctx, k.viewID, string(k.screen), raw); err != nil {
		logger.Warnf("Failed to cache view state %s/%s: %v", k.viewID, k.screen, err)
	}
}

// Revealed reports whether a view has toggled a credential secret visible.
func (s State) Revealed(credentialID string) bool {
	return s.RevealedSecrets[credentialID]
}
