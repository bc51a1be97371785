package repository

import (
	"context"
	"homework_check_backend/internal/model"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedStorage(t *testing.T) (Storage, *MemoryStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	inner := NewMemoryStorage()
	return WithSettingsCache(inner, rdb, time.Minute), inner, mr
}

func TestCachedSettingsReadThrough(t *testing.T) {
	ctx := context.Background()
	s, inner, mr := newCachedStorage(t)

	require.NoError(t, inner.SaveSettings(ctx, &model.Settings{AppTitle: "first"}))
	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", got.AppTitle)
	assert.True(t, mr.Exists(settingsCacheKey))

	// bypassing the cache leaves the cached copy in place
	require.NoError(t, inner.SaveSettings(ctx, &model.Settings{UUIDBase: got.UUIDBase, AppTitle: "second"}))
	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", got.AppTitle)

	// writes through the cache invalidate it
	require.NoError(t, s.SaveSettings(ctx, &model.Settings{UUIDBase: got.UUIDBase, AppTitle: "third"}))
	assert.False(t, mr.Exists(settingsCacheKey))
	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "third", got.AppTitle)
}

func TestCachedRangesInvalidateOnWrite(t *testing.T) {
	ctx := context.Background()
	s, _, mr := newCachedStorage(t)

	ranges, err := s.ListEncouragementRanges(ctx)
	require.NoError(t, err)
	assert.Empty(t, ranges)
	assert.True(t, mr.Exists(rangesCacheKey))

	require.NoError(t, s.CreateEncouragementRange(ctx, &model.EncouragementRange{MinScore: 0, MaxScore: 101, Message: "hi"}))
	assert.False(t, mr.Exists(rangesCacheKey))

	ranges, err = s.ListEncouragementRanges(ctx)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "hi", ranges[0].Message)
}

func TestCachedSettingsFallsBackWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	s, inner, mr := newCachedStorage(t)
	require.NoError(t, inner.SaveSettings(ctx, &model.Settings{AppTitle: "ok"}))

	mr.Close()

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.AppTitle)
}

func TestWithSettingsCacheNilClient(t *testing.T) {
	inner := NewMemoryStorage()
	assert.Same(t, inner, WithSettingsCache(inner, nil, time.Minute))
}
