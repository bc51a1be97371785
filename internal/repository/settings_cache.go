package repository

import (
	"context"
	"encoding/json"
	"homework_check_backend/internal/model"
	"homework_check_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "homework:settings"
	rangesCacheKey   = "homework:encouragement_ranges"
)

// CachedSettingsStore is a read-through redis cache in front of a
// SettingsStore. Any write drops both cache entries. Redis failures fall
// back to the inner store.
type CachedSettingsStore struct {
	SettingsStore
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedSettingsStore(inner SettingsStore, rdb *redis.Client, ttl time.Duration) *CachedSettingsStore {
	return &CachedSettingsStore{SettingsStore: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedSettingsStore) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if c.load(ctx, settingsCacheKey, &settings) {
		return &settings, nil
	}
	s, err := c.SettingsStore.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, settingsCacheKey, s)
	return s, nil
}

func (c *CachedSettingsStore) ListEncouragementRanges(ctx context.Context) ([]model.EncouragementRange, error) {
	var ranges []model.EncouragementRange
	if c.load(ctx, rangesCacheKey, &ranges) {
		return ranges, nil
	}
	ranges, err := c.SettingsStore.ListEncouragementRanges(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, rangesCacheKey, ranges)
	return ranges, nil
}

func (c *CachedSettingsStore) SaveSettings(ctx context.Context, settings *model.Settings) error {
	defer c.invalidate(ctx)
	return c.SettingsStore.SaveSettings(ctx, settings)
}

func (c *CachedSettingsStore) CreateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error {
	defer c.invalidate(ctx)
	return c.SettingsStore.CreateEncouragementRange(ctx, r)
}

func (c *CachedSettingsStore) UpdateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error {
	defer c.invalidate(ctx)
	return c.SettingsStore.UpdateEncouragementRange(ctx, r)
}

func (c *CachedSettingsStore) DeleteEncouragementRange(ctx context.Context, id string) error {
	defer c.invalidate(ctx)
	return c.SettingsStore.DeleteEncouragementRange(ctx, id)
}

func (c *CachedSettingsStore) ReorderEncouragementRanges(ctx context.Context, ids []string) error {
	defer c.invalidate(ctx)
	return c.SettingsStore.ReorderEncouragementRanges(ctx, ids)
}

func (c *CachedSettingsStore) load(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("settings cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Log.Warn("settings cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedSettingsStore) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("settings cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CachedSettingsStore) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, settingsCacheKey, rangesCacheKey).Err(); err != nil {
		logger.Log.Warn("settings cache invalidation failed", zap.Error(err))
	}
}

type composite struct {
	ClassStore
	FolderStore
	AssignmentStore
	AnswerKeyStore
	SubmissionStore
	SettingsStore
}

// WithSettingsCache puts the redis cache in front of base's settings. A nil
// client returns base unchanged.
func WithSettingsCache(base Storage, rdb *redis.Client, ttl time.Duration) Storage {
	if rdb == nil {
		return base
	}
	return &composite{
		ClassStore:      base,
		FolderStore:     base,
		AssignmentStore: base,
		AnswerKeyStore:  base,
		SubmissionStore: base,
		SettingsStore:   NewCachedSettingsStore(base, rdb, ttl),
	}
}
