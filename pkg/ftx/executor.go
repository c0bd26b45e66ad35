package ftx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// executor holds only immutable state; each call is independent.
type executor struct {
	baseURL        string
	doer           Doer
	creds          *Credentials
	defaultTimeout time.Duration
	clock          func() time.Time
	logger         *zap.Logger
}

func (e *executor) execute(ctx context.Context, ep Endpoint, timeout time.Duration) (*RawResponse, error) {
	method := strings.ToUpper(ep.Method())
	path := ep.Path()

	// Build request parts; no I/O.
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, "{}") {
		return nil, constructionErr("path", "descriptor has no expanded path: "+path, nil)
	}
	params, err := ep.Query()
	if err != nil {
		return nil, asConstructionErr("query", err)
	}
	body, err := ep.Body()
	if err != nil {
		return nil, asConstructionErr("body", err)
	}

	if ep.Authenticated() && e.creds == nil {
		return nil, &AuthRequiredError{Method: method, Path: path}
	}

	endpoint := e.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	if timeout <= 0 {
		timeout = e.defaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, constructionErr("request", "cannot build HTTP request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if ep.Authenticated() {
		// Sign the request URI exactly as it goes on the wire, together with
		// the same body slice attached above.
		sig := Sign(e.creds, method, req.URL.RequestURI(), body, e.clock().UnixMilli())
		sig.Apply(req.Header)
	}

	start := time.Now()
	resp, err := e.doer.Do(req)
	if err != nil {
		return nil, transportErr(ctx, method, path, pkgerrors.Wrap(err, "failed do request"))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(ctx, method, path, pkgerrors.Wrap(err, "failed read body"))
	}

	e.logger.Debug("ftx request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Bool("auth", ep.Authenticated()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("latency", time.Since(start)),
	)

	return &RawResponse{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       data,
	}, nil
}

func asConstructionErr(field string, err error) error {
	var ce *ConstructionError
	if errors.As(err, &ce) {
		return err
	}
	return constructionErr(field, "cannot build request", err)
}

func transportErr(ctx context.Context, method, path string, err error) error {
	te := &TransportError{Method: method, Path: path, Err: err}

	var netErr net.Error
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		te.timeout = true
	case errors.As(err, &netErr) && netErr.Timeout():
		te.timeout = true
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		te.canceled = true
	}
	return te
}
