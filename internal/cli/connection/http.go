// Package connection provides the drop service client for kappa-cli.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/kappa-go/internal/core/domain"
	"github.com/yndnr/kappa-go/internal/infra/buildinfo"
	"github.com/yndnr/kappa-go/internal/telemetry/logger"
)

// RequestIDHeader carries the per-command request ID.
const RequestIDHeader = "X-Request-ID"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// Endpoints holds one URL per drop operation.
type Endpoints struct {
	List   string
	Create string
	Edit   string
	Delete string
}

// Credential is the static header sent with every request.
type Credential struct {
	Header string
	Value  string
}

// HTTPClient provides HTTP communication with the drop service.
type HTTPClient struct {
	endpoints  Endpoints
	credential Credential
	client     *http.Client
	userAgent  string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a new HTTP client.
func NewHTTPClient(endpoints Endpoints, credential Credential, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoints:  endpoints,
		credential: credential,
		client:     &http.Client{},
		userAgent:  buildinfo.UserAgent(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs a GET request with the given query parameters.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, query url.Values) (*http.Response, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if len(query) > 0 {
		// Keep parameters already part of the configured endpoint.
		q := u.Query()
		for k, v := range query {
			q[k] = v
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(ctx, req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req)
}

// do attaches the credential and request ID, sends the request and logs
// the outcome. Failures to get any response are domain.ErrTransport.
func (c *HTTPClient) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	reqID := logger.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = ulid.Make().String()
		ctx = logger.WithRequestID(ctx, reqID)
	}

	c.addHeaders(req, reqID)

	log := logger.L(ctx).With("method", req.Method, "url", req.URL.String())
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug("drop request failed", "error", err, "duration", time.Since(start))
		return nil, domain.ErrTransport.Wrap(err)
	}

	log.Debug("drop request completed", "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

// addHeaders adds the credential and common headers.
func (c *HTTPClient) addHeaders(req *http.Request, reqID string) {
	req.Header.Set(c.credential.Header, c.credential.Value)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
}

// ParseResponse decodes a JSON response body into target. Every key in
// required must be present and non-null; when the body is an array the
// check applies to each element. Error statuses, unreadable bodies and
// schema mismatches are all domain.ErrMalformedResponse.
func ParseResponse(resp *http.Response, target any, required ...string) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.ErrMalformedResponse.WithDetails(fmt.Sprintf("status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.ErrMalformedResponse.Wrap(err)
	}

	if err := checkKeys(data, required); err != nil {
		return domain.ErrMalformedResponse.Wrap(err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return domain.ErrMalformedResponse.Wrap(err)
	}

	return nil
}

func checkKeys(data []byte, required []string) error {
	if len(required) == 0 {
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		for i, item := range items {
			if err := checkKeys(item, required); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	for _, key := range required {
		v, ok := fields[key]
		if !ok || string(bytes.TrimSpace(v)) == "null" {
			return fmt.Errorf("missing field %q", key)
		}
	}
	return nil
}
