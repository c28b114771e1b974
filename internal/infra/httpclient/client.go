// Package httpclient is the outbound HTTP client shared by the map data
// integrations. Every request is rate limited and passes a circuit breaker.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"showmyshop/config"
	"showmyshop/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 4 << 20

var breakerState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "showmyshop_upstream_breaker_state",
		Help: "Current state of the upstream circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

// ErrUnavailable is returned while the breaker rejects calls.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

// Options configures one upstream.
type Options struct {
	Name      string
	UserAgent string
	Timeout   time.Duration
	RPS       float64
	Burst     int
	Breaker   config.BreakerConfig
}

// Client calls a single upstream.
type Client struct {
	name      string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[[]byte]
	logger    *slog.Logger
}

func New(opts Options, logger *slog.Logger) *Client {
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	cbCfg := opts.Breaker
	settings := gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    cbCfg.Interval,
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= cbCfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
		// Client errors say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.StatusCode < http.StatusInternalServerError
			}

			return err == nil
		},
	}

	breakerState.WithLabelValues(opts.Name).Set(0)

	return &Client{
		name:      opts.Name,
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
		limiter:   rate.NewLimiter(limit, burst),
		breaker:   gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:    logger,
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Do sends req and returns the response body of a 2xx response.
func (c *Client) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.http.Do(req.WithContext(ctx))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, errors.Wrap(err, "read response body")
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(data), 256)}
		}

		return data, nil
	})
	if errors.IsAny(err, gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests) {
		c.logger.WarnContext(ctx, "Upstream call rejected by circuit breaker", slog.String("breaker", c.name))

		return nil, errors.Wrap(ErrUnavailable, c.name)
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// GetJSON performs a GET and decodes the JSON response into dest.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "create GET request")
	}

	return c.decode(ctx, req, dest)
}

// PostFormJSON posts form values and decodes the JSON response into dest.
func (c *Client) PostFormJSON(ctx context.Context, rawURL string, form url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "create POST request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.decode(ctx, req, dest)
}

func (c *Client) decode(ctx context.Context, req *http.Request, dest any) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrapf(err, "decode %s response", c.name)
	}

	return nil
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
