package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"mealmate/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu    sync.Mutex
	users map[string]User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]User)}
}

func (m *memStore) Get(_ context.Context, id string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memStore) Save(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(start time.Time) (*Service, *clock) {
	common.InitNopLogger()
	c := &clock{t: start}
	svc := NewService(newMemStore(), 3)
	svc.now = c.now
	return svc, c
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), NextMidnight(now))

	now = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), NextMidnight(now))
}

func TestQuotaResetsAfterMidnight(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		ok, err := svc.CanScan(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		_, err = svc.IncrementScan(ctx)
		require.NoError(t, err)
	}

	ok, err := svc.CanScan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// 還沒到午夜，不重置
	c.t = time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	ok, err = svc.CanScan(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	c.t = time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC)
	ok, err = svc.CanScan(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	u, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, u.ScanQuota.Used)
	assert.Equal(t, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), u.ScanQuota.ResetDate)
	assert.Equal(t, 3, ScansRemaining(u))
}

func TestIncrementScanRollsOverFirst(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		_, err := svc.IncrementScan(ctx)
		require.NoError(t, err)
	}

	c.t = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	u, err := svc.IncrementScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, u.ScanQuota.Used)
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), u.ScanQuota.ResetDate)
}

func TestPremiumIgnoresQuota(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		_, err := svc.IncrementScan(ctx)
		require.NoError(t, err)
	}
	u, err := svc.UpgradeToPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, -1, ScansRemaining(u))

	ok, err := svc.CanScan(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
