package ftx

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://ftx.com/api"

type ClientConfig struct {
	// BaseURL defaults to DefaultBaseURL. Its path is part of every signed
	// request URI.
	BaseURL string
	// Timeout applies to calls made with a zero per-call timeout. Zero means
	// only the caller's context bounds the call.
	Timeout time.Duration
	// HTTPClient defaults to a new http.Client.
	HTTPClient Doer
	Logger     *zap.Logger
	// Clock supplies signature timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// Client executes endpoint descriptors. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	exec *executor
}

func NewClient(creds *Credentials, cfg ClientConfig) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, constructionErr("base url", "cannot parse "+baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, constructionErr("base url", "scheme must be http or https", nil)
	}
	if cfg.Timeout < 0 {
		return nil, constructionErr("timeout", "must not be negative", nil)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Client{
		exec: &executor{
			baseURL:        strings.TrimRight(baseURL, "/"),
			doer:           doer,
			creds:          creds,
			defaultTimeout: cfg.Timeout,
			clock:          clock,
			logger:         logger.Named("ftx"),
		},
	}, nil
}

// HasCredentials reports whether authenticated endpoints can be executed.
func (c *Client) HasCredentials() bool {
	return c.exec.creds != nil
}

// Execute sends any endpoint and returns the raw response. Use As to decode
// it when the result type is known.
func (c *Client) Execute(ctx context.Context, ep Endpoint, timeout time.Duration) (*RawResponse, error) {
	return c.exec.execute(ctx, ep, timeout)
}

// Execute sends a typed request. A zero timeout falls back to
// ClientConfig.Timeout.
func Execute[T any](ctx context.Context, c *Client, req Request[T], timeout time.Duration) (*Response[T], error) {
	raw, err := c.exec.execute(ctx, req, timeout)
	if err != nil {
		return nil, err
	}
	return As[T](raw), nil
}

// Fetch executes req and decodes its result.
func Fetch[T any](ctx context.Context, c *Client, req Request[T], timeout time.Duration) (T, error) {
	resp, err := Execute(ctx, c, req, timeout)
	if err != nil {
		var zero T
		return zero, err
	}
	return resp.Deserialize()
}
