package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/models"
	"github.com/tacticusops/raid-dashboard/internal/raid"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// TacticusAPI is the upstream client surface the handlers depend on.
type TacticusAPI interface {
	Player(ctx context.Context, apiKey string) (*models.PlayerResponse, error)
	Guild(ctx context.Context, apiKey string) (*models.GuildResponse, error)
	GuildRaid(ctx context.Context, apiKey string) (*models.RaidResponse, error)
	BreakerState() string
}

// RaidStore is the cache/name-store surface the handlers depend on.
type RaidStore interface {
	CachedEntries(ctx context.Context, apiKey string) ([]models.RaidEntry, bool)
	PutEntries(ctx context.Context, apiKey string, entries []models.RaidEntry)
	InvalidateEntries(ctx context.Context, apiKey string)
	SetName(ctx context.Context, userID, name string) error
	AllNames(ctx context.Context) raid.NameMap
	Ping(ctx context.Context) error
}

type Config struct {
	Tacticus TacticusAPI
	Store    RaidStore
	Logger   *zap.Logger
}

type Handler struct {
	tacticus  TacticusAPI
	store     RaidStore
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		tacticus:  cfg.Tacticus,
		store:     cfg.Store,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
