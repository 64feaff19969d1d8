package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"beauty-storefront/internal/appstate"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func stateFactory() (*appstate.AppState, error) {
	return appstate.New(appstate.Options{RefreshInterval: time.Hour})
}

func TestRegistryIssueAndLookup(t *testing.T) {
	r := New(stateFactory, Options{})
	t.Cleanup(r.Close)

	id, state, err := r.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := r.Lookup(id)
	require.NoError(t, err)
	require.Same(t, state, got)
	require.Len(t, got.Vouchers(), 4)

	_, err = r.Lookup("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.EqualError(t, err, "session: not found")
}

func TestRegistryIssueFactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := New(func() (*appstate.AppState, error) { return nil, boom }, Options{})
	_, _, err := r.Issue()
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, r.Len())
}

func TestRegistryEnd(t *testing.T) {
	r := New(stateFactory, Options{})
	id, _, err := r.Issue()
	require.NoError(t, err)

	require.NoError(t, r.End(id))
	require.ErrorIs(t, r.End(id), ErrSessionNotFound)
	_, err = r.Lookup(id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistrySweepEndsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := New(stateFactory, Options{TTL: time.Hour, Clock: clock.Now})
	t.Cleanup(r.Close)

	idle, _, err := r.Issue()
	require.NoError(t, err)
	active, _, err := r.Issue()
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	_, err = r.Lookup(active)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)

	require.Equal(t, 1, r.Sweep())
	_, err = r.Lookup(idle)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Lookup(active)
	require.NoError(t, err)
}

func TestRegistryRunStopsOnCancel(t *testing.T) {
	r := New(stateFactory, Options{})
	t.Cleanup(r.Close)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRegistryClose(t *testing.T) {
	r := New(stateFactory, Options{})
	for i := 0; i < 3; i++ {
		_, _, err := r.Issue()
		require.NoError(t, err)
	}
	r.Close()
	require.Equal(t, 0, r.Len())
}
