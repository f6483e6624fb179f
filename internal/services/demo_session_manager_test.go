package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
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

func TestDemoSessionManagerLifecycle(t *testing.T) {
	m := NewDemoSessionManager(testDemos, staticInvoker{}, time.Minute)

	a, err := m.Create()
	require.NoError(t, err)
	b, err := m.Create()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Count())

	got, err := m.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	// Sessions are independent.
	require.NoError(t, a.SelectDemo("beta"))
	assert.Equal(t, "alpha", b.Snapshot().Demo.ID)

	require.NoError(t, m.Delete(a.ID))
	_, err = m.Get(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(a.ID), ErrSessionNotFound)
	assert.Equal(t, 1, m.Count())
}

func TestDemoSessionManagerNoDemos(t *testing.T) {
	m := NewDemoSessionManager(nil, staticInvoker{}, time.Minute)
	_, err := m.Create()
	assert.ErrorIs(t, err, ErrNoDemos)
}

func TestDemoSessionManagerSweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	inv := newGatedInvoker(`{}`)
	m := NewDemoSessionManager(testDemos, inv, 10*time.Minute)
	m.now = clock.Now

	idle, err := m.Create()
	require.NoError(t, err)
	active, err := m.Create()
	require.NoError(t, err)
	busy, err := m.Create()
	require.NoError(t, err)

	done := make(chan string, 1)
	require.NoError(t, busy.RunAsync(context.Background(), func(o string) { done <- o }))
	waitInFlight(t, busy)

	clock.Advance(8 * time.Minute)
	active.SetInput("still here")
	clock.Advance(5 * time.Minute)

	assert.Equal(t, 1, m.Sweep())
	_, err = m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(active.ID)
	assert.NoError(t, err)
	_, err = m.Get(busy.ID)
	assert.NoError(t, err, "sessions with a run pending are kept")

	close(inv.release)
	<-done
}

func TestDemoSessionManagerSweepDisabled(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	m := NewDemoSessionManager(testDemos, staticInvoker{}, 0)
	m.now = clock.Now

	_, err := m.Create()
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	assert.Equal(t, 0, m.Sweep())
	assert.Equal(t, 1, m.Count())
}

func TestDemoSessionManagerStartStops(t *testing.T) {
	m := NewDemoSessionManager(testDemos, staticInvoker{}, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		m.Start(ctx, 10*time.Millisecond)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
