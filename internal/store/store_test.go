package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

// fakeRedis is an in-memory RedisClient for store tests.
type fakeRedis struct {
	strings map[string]string
	hashes  map[string]map[string]string
	failAll bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		strings: make(map[string]string),
		hashes:  make(map[string]map[string]string),
	}
}

var errFake = errors.New("redis down")

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failAll {
		return redis.NewStringResult("", errFake)
	}
	if v, ok := f.strings[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failAll {
		return redis.NewStatusResult("", errFake)
	}
	switch v := value.(type) {
	case []byte:
		f.strings[key] = string(v)
	case string:
		f.strings[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.failAll {
		return redis.NewIntResult(0, errFake)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.strings[k]; ok {
			delete(f.strings, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	if f.failAll {
		return redis.NewIntResult(0, errFake)
	}
	h, ok := f.hashes[key]
	if !ok {
		h = make(map[string]string)
		f.hashes[key] = h
	}
	for i := 0; i+1 < len(values); i += 2 {
		h[values[i].(string)] = values[i+1].(string)
	}
	return redis.NewIntResult(int64(len(values) / 2), nil)
}

func (f *fakeRedis) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	if f.failAll {
		return redis.NewStringResult("", errFake)
	}
	if v, ok := f.hashes[key][field]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	if f.failAll {
		return redis.NewMapStringStringResult(nil, errFake)
	}
	return redis.NewMapStringStringResult(f.hashes[key], nil)
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	if f.failAll {
		return redis.NewStatusResult("", errFake)
	}
	return redis.NewStatusResult("PONG", nil)
}

func newTestStore(rdb RedisClient) *Store {
	return New(rdb, time.Minute, zap.NewNop())
}

func TestEntriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newFakeRedis())

	if _, ok := s.CachedEntries(ctx, "key-a"); ok {
		t.Fatal("expected cold cache miss")
	}

	entries := []models.RaidEntry{
		{BossType: "Szarekh", Rarity: "Epic", Set: 1, Tier: 2, UserID: "u1", DamageDealt: 1500, DamageType: "Melee"},
	}
	s.PutEntries(ctx, "key-a", entries)

	got, ok := s.CachedEntries(ctx, "key-a")
	if !ok {
		t.Fatal("expected cache hit after put")
	}
	if len(got) != 1 || got[0].BossType != "Szarekh" || got[0].DamageDealt != 1500 {
		t.Errorf("cached entries = %+v", got)
	}

	// Distinct credentials never share cache slots.
	if _, ok := s.CachedEntries(ctx, "key-b"); ok {
		t.Error("different credential must miss")
	}

	s.InvalidateEntries(ctx, "key-a")
	if _, ok := s.CachedEntries(ctx, "key-a"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestCachedEntriesCorruptPayload(t *testing.T) {
	ctx := context.Background()
	f := newFakeRedis()
	s := newTestStore(f)

	f.strings[entriesKey("key-a")] = "{not json"
	if _, ok := s.CachedEntries(ctx, "key-a"); ok {
		t.Fatal("corrupt payload must be a miss")
	}
	if _, still := f.strings[entriesKey("key-a")]; still {
		t.Error("corrupt payload must be discarded")
	}
}

func TestCacheDegradesWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	f := newFakeRedis()
	f.failAll = true
	s := newTestStore(f)

	if _, ok := s.CachedEntries(ctx, "key-a"); ok {
		t.Error("redis failure must read as a miss")
	}
	// Writes must not panic or error the request path.
	s.PutEntries(ctx, "key-a", []models.RaidEntry{{UserID: "u1"}})

	if err := s.Ping(ctx); err == nil {
		t.Error("Ping must surface the failure for readiness")
	}
}

func TestKeyIsHashedCredential(t *testing.T) {
	ctx := context.Background()
	f := newFakeRedis()
	s := newTestStore(f)

	s.PutEntries(ctx, "super-secret", []models.RaidEntry{})
	for k := range f.strings {
		if k != entriesKey("super-secret") {
			t.Errorf("unexpected key %q", k)
		}
		if len(k) != len(entriesKeyPrefix)+64 {
			t.Errorf("key %q is not prefix+sha256hex", k)
		}
	}
}

func TestNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newFakeRedis())

	if err := s.SetName(ctx, "u1", "Alice"); err != nil {
		t.Fatalf("SetName error: %v", err)
	}

	if got := s.Name(ctx, "u1"); got != "Alice" {
		t.Errorf("Name(u1) = %q, want Alice", got)
	}
	if got := s.Name(ctx, "nobody"); got != "" {
		t.Errorf("unmapped Name = %q, want empty", got)
	}

	names := s.AllNames(ctx)
	if names.DisplayName("u1") != "Alice" || names.DisplayName("nobody") != "" {
		t.Errorf("AllNames = %v", names)
	}
}

func TestAllNamesWhenRedisDown(t *testing.T) {
	f := newFakeRedis()
	f.failAll = true
	s := newTestStore(f)

	names := s.AllNames(context.Background())
	if names == nil {
		t.Fatal("expected empty resolver, got nil")
	}
	if names.DisplayName("u1") != "" {
		t.Error("failed lookup must resolve to empty names")
	}
}
