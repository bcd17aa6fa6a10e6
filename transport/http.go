package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultTimeout = 30 * time.Second

	userAgent = "soroswap-client-go"
)

// Config holds the configuration for an HTTPTransport.
type Config struct {
	BaseURL string
	APIKey  string
	// Timeout bounds each request. Zero selects DefaultTimeout. It is ignored when
	// HTTPClient is set.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     Logger
	Registry   prometheus.Registerer
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("config: BaseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid BaseURL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: BaseURL scheme must be http or https, got %q", u.Scheme)
	}
	if c.APIKey == "" {
		return errors.New("config: APIKey is required")
	}
	if c.Timeout < 0 {
		return errors.New("config: Timeout must not be negative")
	}
	if c.Logger == nil {
		return errors.New("config: Logger is required")
	}
	if c.Registry == nil {
		return errors.New("config: Registry is required")
	}
	return nil
}

// HTTPTransport sends JSON requests authenticated with a bearer API key.
// It is safe for concurrent use.
type HTTPTransport struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  Logger
	metrics *metrics
}

func NewHTTPTransport(cfg Config) (*HTTPTransport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m, err := newMetrics(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPTransport{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
		logger:  cfg.Logger,
		metrics: m,
	}, nil
}

func (t *HTTPTransport) Get(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, out)
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Message: "failed to encode request body", Err: err}
	}
	return t.do(ctx, http.MethodPost, path, payload, out)
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, payload []byte, out any) error {
	route, ok := routeFrom(ctx)
	if !ok {
		route = firstSegment(path)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return &Error{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	elapsed := time.Since(start)
	t.metrics.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	if err != nil {
		t.metrics.requests.WithLabelValues(method, route, statusClass(0)).Inc()
		t.logger.Warn("Request failed", "method", method, "path", path, "error", err)
		return &Error{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	t.metrics.requests.WithLabelValues(method, route, statusClass(resp.StatusCode)).Inc()
	t.logger.Debug("Request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", elapsed,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := newStatusError(resp.StatusCode, preview)
		t.logger.Warn("Request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: "failed to decode response body", Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// firstSegment names requests that were not tagged with WithRoute.
func firstSegment(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(p, "/?"); i >= 0 {
		p = p[:i]
	}
	return "/" + p
}
