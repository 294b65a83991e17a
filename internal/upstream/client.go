package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// StatusError is a non-2xx upstream response. The status code travels in the
// message so section error strings stay human readable, and in Code so
// callers can branch on it (404 on the base section means the city does not
// exist).
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with %d", e.Code)
}

// IsStatus reports whether err carries the given upstream status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Config tunes the upstream HTTP client.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	RequestsPerSec   float64
	Burst            int
	BreakerTimeout   time.Duration
	BreakerThreshold uint32
}

// Client talks to the external city-data service. One method call is exactly
// one outbound request; there are no internal retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
}

// NewClient builds a city-data client with a circuit breaker and a client-side
// rate limit. Cancelled requests do not count against the breaker.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	threshold := cfg.BreakerThreshold
	if threshold == 0 {
		threshold = 5
	}
	breakerTimeout := cfg.BreakerTimeout
	if breakerTimeout <= 0 {
		breakerTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "citydata",
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("client", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		limiter:    limiter,
	}
}

// getJSON performs one GET against the city-data service and decodes the JSON
// body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	start := time.Now()
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{Code: resp.StatusCode, URL: reqURL}
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return nil, nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.DebugContext(ctx, "upstream request failed",
				slog.String("url", reqURL),
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err))
		}
		return err
	}

	c.logger.DebugContext(ctx, "upstream request completed",
		slog.String("url", reqURL),
		slog.Duration("duration", time.Since(start)))
	return nil
}
