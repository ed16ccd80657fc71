package api

import (
	"testing"
	"time"

	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/alexanderramin/tailquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestRegistry_AddSweepsIdleSessions(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newRegistry()
	r.now = clock.now

	idle := r.add(session.New(cat, nil))
	active := r.add(session.New(cat, nil))

	clock.t = clock.t.Add(20 * time.Minute)
	_, ok := r.get(active)
	require.True(t, ok)

	clock.t = clock.t.Add(15 * time.Minute)
	fresh := r.add(session.New(cat, nil))

	_, ok = r.get(idle)
	assert.False(t, ok, "idle session should be evicted")
	_, ok = r.get(active)
	assert.True(t, ok, "recently used session should survive")
	_, ok = r.get(fresh)
	assert.True(t, ok)
	assert.Equal(t, 2, r.len())
}

func TestRegistry_Remove(t *testing.T) {
	r := newRegistry()
	id := r.add(session.New(testutil.NewTestCatalog(t), nil))

	assert.True(t, r.remove(id))
	assert.False(t, r.remove(id))
	_, ok := r.get(id)
	assert.False(t, ok)
}

func TestRegistry_ZeroTTLKeepsSessions(t *testing.T) {
	r := newRegistry()
	r.ttl = 0
	clock := &fakeClock{t: time.Now()}
	r.now = clock.now

	r.add(session.New(testutil.NewTestCatalog(t), nil))
	clock.t = clock.t.Add(24 * time.Hour)
	r.add(session.New(testutil.NewTestCatalog(t), nil))
	assert.Equal(t, 2, r.len())
}
