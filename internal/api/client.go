// Package api is the HTTP client for the planning service.
package api

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

	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/plan"
)

// Service endpoints.
const (
	CalculatePath = "/api/calculate"
	AIPlanPath    = "/api/ai-plan"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// ServiceError is an error reported by the service in the response's error field.
type ServiceError struct {
	Endpoint string
	Status   int
	Message  string
}

// Error returns the server message verbatim so it can be shown to the user.
func (e *ServiceError) Error() string {
	return e.Message
}

// Client calls the planning service. It implements submit.Backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Calculate requests the instant material and timeline calculation.
func (c *Client) Calculate(ctx context.Context, req plan.Request) (*plan.Calculation, error) {
	var out plan.Calculation
	if err := c.post(ctx, CalculatePath, req, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &ServiceError{Endpoint: CalculatePath, Status: http.StatusOK, Message: out.Error}
	}
	if out.Materials == nil {
		return nil, errors.New("calculation response missing results")
	}
	return &out, nil
}

// GenerateAIPlan requests the AI-generated plan.
func (c *Client) GenerateAIPlan(ctx context.Context, req plan.Request) (*plan.Analysis, error) {
	var out plan.AIPlan
	if err := c.post(ctx, AIPlanPath, req, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		if out.Raw != "" {
			c.log.Debug("AI plan raw response", zap.String("raw", out.Raw))
		}
		return nil, &ServiceError{Endpoint: AIPlanPath, Status: http.StatusOK, Message: out.Error}
	}
	if out.Analysis == nil {
		return nil, errors.New("AI response missing analysis")
	}
	return out.Analysis, nil
}

// errorBody is the error shape the service uses for non-2xx responses.
type errorBody struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

func (c *Client) post(ctx context.Context, path string, body plan.Request, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL.JoinPath(path).String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn("HTTP request failed",
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	c.log.Info("HTTP request",
		zap.String("method", http.MethodPost),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			if eb.Raw != "" {
				c.log.Debug("service error raw payload", zap.String("path", path), zap.String("raw", eb.Raw))
			}
			return &ServiceError{Endpoint: path, Status: resp.StatusCode, Message: eb.Error}
		}
		return fmt.Errorf("%s returned %s", path, resp.Status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}
