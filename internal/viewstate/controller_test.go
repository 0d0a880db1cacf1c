package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) CacheViewState(ctx context.Context, viewID, screen string, snapshot []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("connection refused")
	}
	f.entries[viewID+":"+screen] = snapshot
	return nil
}

func (f *fakeCache) GetCachedViewState(ctx context.Context, viewID, screen string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[viewID+":"+screen], nil
}

func (f *fakeCache) ClearViewStates(ctx context.Context, viewID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k := range f.entries {
		if len(k) > len(viewID) && k[:len(viewID)+1] == viewID+":" {
			delete(f.entries, k)
			n++
		}
	}
	return n, nil
}

func TestController_ViewsAreIndependent(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	_, err := c.Apply(ctx, "tab-a", ScreenDevices, Action{Type: ActionView, ID: "1"})
	require.NoError(t, err)

	a, _ := c.State(ctx, "tab-a", ScreenDevices)
	b, _ := c.State(ctx, "tab-b", ScreenDevices)

	assert.Equal(t, ViewDetail, a.View)
	assert.Equal(t, ViewList, b.View)
}

func TestController_RejectedActionKeepsState(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	_, err := c.Apply(ctx, "v", ScreenWebhooks, Action{Type: ActionAdd})
	require.NoError(t, err)

	state, err := c.Apply(ctx, "v", ScreenWebhooks, Action{Type: ActionAdd})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	assert.Equal(t, ViewForm, state.View)
}

func TestController_UnknownScreen(t *testing.T) {
	c := NewController(nil)

	_, err := c.State(context.Background(), "v", "billing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestController_ToggleSort(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	s, err := c.ToggleSort(ctx, "v", ScreenMessages, "timestamp")
	require.NoError(t, err)
	assert.Equal(t, listview.Sort{Key: "timestamp", Direction: listview.Asc}, s.Query.Sort)

	s, _ = c.ToggleSort(ctx, "v", ScreenMessages, "sender")
	assert.Equal(t, listview.Sort{Key: "sender", Direction: listview.Desc}, s.Query.Sort)
}

func TestController_SetQueryKeepsSortWhenOmitted(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	s, err := c.SetQuery(ctx, "v", ScreenMessages, listview.Query{Search: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Query.Search)
	assert.Equal(t, "timestamp", s.Query.Sort.Key)
}

func TestController_ToggleSecret(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	s, err := c.ToggleSecret(ctx, "v", "cred-1")
	require.NoError(t, err)
	assert.True(t, s.Revealed("cred-1"))

	other, _ := c.State(ctx, "w", ScreenCredentials)
	assert.False(t, other.Revealed("cred-1"))

	s, _ = c.ToggleSecret(ctx, "v", "cred-1")
	assert.False(t, s.Revealed("cred-1"))
}

func TestController_RestoresFromCache(t *testing.T) {
	cache := newFakeCache()
	ctx := context.Background()

	first := NewController(cache)
	_, err := first.Apply(ctx, "v", ScreenMessages, Action{Type: ActionView, ID: "2"})
	require.NoError(t, err)

	second := NewController(cache)
	s, err := second.State(ctx, "v", ScreenMessages)
	require.NoError(t, err)
	assert.Equal(t, ViewConversation, s.View)
	assert.Equal(t, "2", s.SelectedID)

	second.Forget(ctx, "v")
	s, _ = second.State(ctx, "v", ScreenMessages)
	assert.Equal(t, ViewList, s.View)
}

func TestController_CacheFailureDoesNotFailAction(t *testing.T) {
	cache := newFakeCache()
	cache.failSet = true
	c := NewController(cache)

	s, err := c.Apply(context.Background(), "v", ScreenCredentials, Action{Type: ActionAdd})
	require.NoError(t, err)
	assert.Equal(t, ViewCreate, s.View)
}

func TestController_SweepDropsIdleStates(t *testing.T) {
	c := NewController(nil)
	ctx := context.Background()

	start := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	now := start
	c.now = func() time.Time { return now }

	for i := range 5000 {
		_, err := c.SetQuery(ctx, fmt.Sprintf("view-%d", i), ScreenMessages, listview.Query{
			Filters: map[string]string{"status": "failed"},
		})
		require.NoError(t, err)
	}

	now = start.Add(20 * time.Minute)
	_, err := c.Apply(ctx, "active", ScreenDevices, Action{Type: ActionAdd})
	require.NoError(t, err)

	assert.Equal(t, 0, c.Sweep(time.Hour))
	assert.Equal(t, 5000, c.Sweep(10*time.Minute))

	c.mu.Lock()
	remaining := len(c.states)
	c.mu.Unlock()
	assert.Equal(t, 1, remaining)

	state, err := c.State(ctx, "active", ScreenDevices)
	require.NoError(t, err)
	assert.Equal(t, ViewCreate, state.View)

	state, err = c.State(ctx, "view-1", ScreenMessages)
	require.NoError(t, err)
	assert.Equal(t, ViewList, state.View)
	assert.Empty(t, state.Query.Filters)
}
