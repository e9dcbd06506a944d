package session_test

import (
	"context"
	"testing"
	"time"

	"txlog/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *session.AppSessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewAppSessionStore(rdb, ttl)
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "sid-1", 7, "admin"))

	as, err := s.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.EqualValues(t, 7, as.AdminID)
	require.Equal(t, "admin", as.Username)
	require.Greater(t, as.ExpiresAt, as.IssuedAt)
}

func TestSessionGetUnknown(t *testing.T) {
	s := newTestStore(t, time.Hour)
	_, err := s.Get(context.Background(), "nope")
	require.Error(t, err)
}

func TestSessionDelete(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "sid-1", 7, "admin"))
	require.NoError(t, s.Delete(ctx, "sid-1"))

	_, err := s.Get(ctx, "sid-1")
	require.Error(t, err)
}

func TestRevokeAllForAdmin(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "sid-1", 7, "admin"))
	require.NoError(t, s.Create(ctx, "sid-2", 7, "admin"))
	require.NoError(t, s.Create(ctx, "sid-3", 8, "other"))

	require.NoError(t, s.RevokeAllForAdmin(ctx, 7))

	_, err := s.Get(ctx, "sid-1")
	require.Error(t, err)
	_, err = s.Get(ctx, "sid-2")
	require.Error(t, err)
	// other admin untouched
	_, err = s.Get(ctx, "sid-3")
	require.NoError(t, err)
}
