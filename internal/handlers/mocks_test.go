package handlers

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

// mockTacticus implements TacticusAPI for handler tests.
type mockTacticus struct {
	PlayerFunc    func(ctx context.Context, apiKey string) (*models.PlayerResponse, error)
	GuildFunc     func(ctx context.Context, apiKey string) (*models.GuildResponse, error)
	GuildRaidFunc func(ctx context.Context, apiKey string) (*models.RaidResponse, error)
	State         string

	raidCalls int
}

func (m *mockTacticus) Player(ctx context.Context, apiKey string) (*models.PlayerResponse, error) {
	if m.PlayerFunc != nil {
		return m.PlayerFunc(ctx, apiKey)
	}
	return &models.PlayerResponse{}, nil
}

func (m *mockTacticus) Guild(ctx context.Context, apiKey string) (*models.GuildResponse, error) {
	if m.GuildFunc != nil {
		return m.GuildFunc(ctx, apiKey)
	}
	return &models.GuildResponse{}, nil
}

func (m *mockTacticus) GuildRaid(ctx context.Context, apiKey string) (*models.RaidResponse, error) {
	m.raidCalls++
	if m.GuildRaidFunc != nil {
		return m.GuildRaidFunc(ctx, apiKey)
	}
	return &models.RaidResponse{Entries: []models.RaidEntry{}}, nil
}

func (m *mockTacticus) BreakerState() string {
	if m.State == "" {
		return "closed"
	}
	return m.State
}

// mockStore implements RaidStore in memory.
type mockStore struct {
	cache   map[string][]models.RaidEntry
	names   map[string]string
	pingErr error
	nameErr error

	puts        int
	invalidated int
}

func newMockStore() *mockStore {
	return &mockStore{
		cache: make(map[string][]models.RaidEntry),
		names: make(map[string]string),
	}
}

func (m *mockStore) CachedEntries(ctx context.Context, apiKey string) ([]models.RaidEntry, bool) {
	entries, ok := m.cache[apiKey]
	return entries, ok
}

func (m *mockStore) PutEntries(ctx context.Context, apiKey string, entries []models.RaidEntry) {
	m.puts++
	m.cache[apiKey] = entries
}

func (m *mockStore) InvalidateEntries(ctx context.Context, apiKey string) {
	m.invalidated++
	delete(m.cache, apiKey)
}

func (m *mockStore) SetName(ctx context.Context, userID, name string) error {
	if m.nameErr != nil {
		return m.nameErr
	}
	m.names[userID] = name
	return nil
}

func (m *mockStore) AllNames(ctx context.Context) raid.NameMap {
	return raid.NameMap(m.names)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

var errMock = errors.New("mock failure")

func newTestHandler(api *mockTacticus, st *mockStore) *Handler {
	if api == nil {
		api = &mockTacticus{}
	}
	if st == nil {
		st = newMockStore()
	}
	return New(Config{Tacticus: api, Store: st, Logger: zap.NewNop()})
}
