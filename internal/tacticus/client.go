// Package tacticus is the typed client for the public Tacticus API. The
// credential is a single opaque API key passed through unchanged on every
// call; the client never stores it.
package tacticus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/tacticusops/raid-dashboard/internal/models"
)

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tacticus_upstream_requests_total",
		Help: "Total number of upstream Tacticus API requests by endpoint and outcome",
	}, []string{"endpoint", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tacticus_upstream_request_duration_seconds",
		Help:    "Duration of upstream Tacticus API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	breakerRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tacticus_upstream_breaker_rejected_total",
		Help: "Total number of upstream requests rejected by the open circuit breaker",
	})
)

var (
	// ErrNoAPIKey is returned when a request reaches the client without a credential.
	ErrNoAPIKey = errors.New("no API key set")
	// ErrForbidden maps upstream 403: invalid key or missing scope.
	ErrForbidden = errors.New("invalid API key or insufficient permissions")
	// ErrNotFound maps upstream 404: no data behind this key (no player,
	// no guild membership, no raid entries).
	ErrNotFound = errors.New("not found")
)

// StatusError is returned for upstream responses outside the mapped set.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.Code)
}

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client calls the Tacticus API with a circuit breaker around upstream I/O.
// Client errors (403/404) pass through without tripping the breaker; only
// transport failures and 5xx responses count against it.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.SugaredLogger
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger.Sugar(),
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "tacticus-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// 403/404 are well-formed upstream answers, not outages.
			var se *StatusError
			return errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotFound) ||
				(errors.As(err, &se) && se.Code < 500)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warnw("Upstream breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// BreakerState reports the circuit breaker state for readiness checks.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// Player fetches the player profile behind the API key.
func (c *Client) Player(ctx context.Context, apiKey string) (*models.PlayerResponse, error) {
	body, err := c.get(ctx, apiKey, "/player")
	if err != nil {
		return nil, err
	}
	var out models.PlayerResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode player payload: %w", err)
	}
	return &out, nil
}

// Guild fetches the guild of the player behind the API key.
func (c *Client) Guild(ctx context.Context, apiKey string) (*models.GuildResponse, error) {
	body, err := c.get(ctx, apiKey, "/guild")
	if err != nil {
		return nil, err
	}
	var out models.GuildResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode guild payload: %w", err)
	}
	return &out, nil
}

// GuildRaid fetches the current-season raid attack log.
func (c *Client) GuildRaid(ctx context.Context, apiKey string) (*models.RaidResponse, error) {
	body, err := c.get(ctx, apiKey, "/guildRaid")
	if err != nil {
		return nil, err
	}
	var out models.RaidResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode raid payload: %w", err)
	}
	if out.Entries == nil {
		out.Entries = []models.RaidEntry{}
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, apiKey, path string) ([]byte, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doGet(ctx, apiKey, path)
	})
	upstreamDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		upstreamRequests.WithLabelValues(path, "ok").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		breakerRejected.Inc()
		upstreamRequests.WithLabelValues(path, "rejected").Inc()
		c.logger.Warnw("Upstream request rejected by breaker", "path", path)
	default:
		upstreamRequests.WithLabelValues(path, "error").Inc()
	}

	return body, err
}

func (c *Client) doGet(ctx context.Context, apiKey, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		return body, nil
	case http.StatusForbidden:
		return nil, ErrForbidden
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		c.logger.Warnw("Unexpected upstream status", "path", path, "status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}
}
