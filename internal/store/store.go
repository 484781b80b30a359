// Package store holds the Redis collaborators: the raid-feed cache and the
// persisted userId -> display-name mapping. Cache failures degrade to a miss
// so a broken Redis never fails a request, only slows it down.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

const (
	entriesKeyPrefix = "raid:entries:"
	namesKey         = "player_names"
)

// Prometheus metrics
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raid_entry_cache_hits_total",
		Help: "Total number of raid-entry cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raid_entry_cache_misses_total",
		Help: "Total number of raid-entry cache misses",
	})
)

// RedisClient is the subset of redis.Client the store uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type Store struct {
	rdb    RedisClient
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func New(rdb RedisClient, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

// hashKey hashes the credential so the opaque API key itself never appears
// in Redis, only its SHA-256.
func hashKey(apiKey string) string {
	h := sha256.New()
	h.Write([]byte(apiKey))
	return hex.EncodeToString(h.Sum(nil))
}

func entriesKey(apiKey string) string {
	return entriesKeyPrefix + hashKey(apiKey)
}

// CachedEntries returns the cached raid feed for this credential, or
// (nil, false) on miss or any cache failure.
func (s *Store) CachedEntries(ctx context.Context, apiKey string) ([]models.RaidEntry, bool) {
	data, err := s.rdb.Get(ctx, entriesKey(apiKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warnw("Raid cache read failed", "error", err)
		}
		cacheMisses.Inc()
		return nil, false
	}

	var entries []models.RaidEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warnw("Raid cache payload corrupt, discarding", "error", err)
		s.rdb.Del(ctx, entriesKey(apiKey))
		cacheMisses.Inc()
		return nil, false
	}

	cacheHits.Inc()
	return entries, true
}

// PutEntries caches the raid feed for this credential with the configured TTL.
func (s *Store) PutEntries(ctx context.Context, apiKey string, entries []models.RaidEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Warnw("Raid cache encode failed", "error", err)
		return
	}
	if err := s.rdb.Set(ctx, entriesKey(apiKey), data, s.ttl).Err(); err != nil {
		s.logger.Warnw("Raid cache write failed", "error", err)
	}
}

// InvalidateEntries drops the cached feed for this credential.
func (s *Store) InvalidateEntries(ctx context.Context, apiKey string) {
	if err := s.rdb.Del(ctx, entriesKey(apiKey)).Err(); err != nil {
		s.logger.Warnw("Raid cache invalidation failed", "error", err)
	}
}

// SetName stores a display name for a user id.
func (s *Store) SetName(ctx context.Context, userID, name string) error {
	return s.rdb.HSet(ctx, namesKey, userID, name).Err()
}

// Name returns the display name for a user id, empty when unmapped.
func (s *Store) Name(ctx context.Context, userID string) string {
	name, err := s.rdb.HGet(ctx, namesKey, userID).Result()
	if err != nil {
		return ""
	}
	return name
}

// AllNames returns the whole mapping as a resolver for the player aggregator.
// Lookup failures yield an empty map, never an error: an unmapped player just
// renders without a display name.
func (s *Store) AllNames(ctx context.Context) raid.NameMap {
	names, err := s.rdb.HGetAll(ctx, namesKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warnw("Display-name lookup failed", "error", err)
		}
		return raid.NameMap{}
	}
	return raid.NameMap(names)
}

// Ping reports Redis health for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
