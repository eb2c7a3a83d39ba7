package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/proyectoslancha/pattymoda/pkg/api"
	apperrors "github.com/proyectoslancha/pattymoda/pkg/errors"
	"github.com/proyectoslancha/pattymoda/pkg/logger"
	"github.com/proyectoslancha/pattymoda/pkg/metrics"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "storefront-client/1.0"

	// RequestIDHeader carries the per-call request ID to the backend.
	RequestIDHeader = "X-Request-ID"
)

// Config holds the connection settings of the shared client.
type Config struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics records every request on r.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.metrics = r
		}
	}
}

// Client is the shared HTTP client all endpoint services delegate to.
// It is safe for concurrent use and holds no per-request state.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *logger.Logger
	metrics    metrics.Recorder
}

// NewClient creates a new API client.
func NewClient(cfg Config, log *logger.Logger, opts ...Option) (*Client, error) {
	if log == nil {
		log = logger.NewDevelopment("apiclient")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, apperrors.NewConfigError(apperrors.ErrCodeValidation, "invalid base URL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, apperrors.NewConfigError(apperrors.ErrCodeValidation,
			fmt.Sprintf("base URL must be absolute http(s), got %q", cfg.BaseURL), nil)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  log,
		metrics: metrics.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET for path (which may carry a query string) and decodes the
// full response envelope into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path
	metricPath, _, _ := strings.Cut(path, "?")

	requestID := logger.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = logger.WithRequestID(ctx, requestID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewAPIError(apperrors.ErrCodeRequestBuild, "failed to create request", false, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.metrics.RequestStarted(metricPath)
	start := time.Now()
	status := 0
	defer func() {
		duration := time.Since(start)
		c.metrics.RequestFinished(metricPath, status, duration)
		c.logger.HTTPRequest(ctx, http.MethodGet, path, status, duration)
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var info api.ErrorInfo
		if err := json.Unmarshal(body, &info); err != nil {
			c.logger.WithContext(ctx).Debug("non-JSON error body", "status", resp.StatusCode, "body", string(body))
		}
		return newStatusError(resp.StatusCode, path, requestID, info.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewAPIError(apperrors.ErrCodeDecode, "failed to decode API response", false, err).
			WithMetadata("http_path", path)
	}

	return nil
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.NewAPIError(apperrors.ErrCodeTimeout, "request timed out", true, err)
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.NewAPIError(apperrors.ErrCodeNetworkError, "request cancelled", false, err)
	}
	return apperrors.NewAPIError(apperrors.ErrCodeNetworkError, "failed to make request", true, err)
}
