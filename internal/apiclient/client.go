// Package apiclient is the shared HTTP transport under every resource
// client: one base URL, JSON bodies, and an explicit interceptor chain
// that stamps credentials onto requests and classifies failed
// responses exactly once before they reach the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/inventory-client/internal/session"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// Options configures a Client. Zero values get sensible defaults;
// TokenStore, Notifier and OnUnauthorized are optional ports — a nil
// port simply skips its side effect.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	TokenStore     session.TokenStore
	Notifier       Notifier
	OnUnauthorized func()
	Logger         *logrus.Logger
}

// RequestInterceptor rewrites an outgoing request before it is sent. A
// returned error aborts the call without touching the network.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor inspects the outcome of a call and returns the
// error the caller will see. resp is nil and err non-nil when the
// request never produced a response.
type ResponseInterceptor func(ctx context.Context, resp *http.Response, body []byte, err error) error

// Client is the configured transport shared by all resource clients.
// Construct it once per process with New.
type Client struct {
	baseURL        *url.URL
	http           *http.Client
	tokens         session.TokenStore
	notifier       Notifier
	onUnauthorized func()
	log            *logrus.Logger

	// The chains run in slice order; the defaults are
	// [authenticateRequest] and [classifyResponse].
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// New builds a Client from opts.
func New(opts Options) (*Client, error) {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", base, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	c := &Client{
		baseURL:        u,
		http:           httpClient,
		tokens:         opts.TokenStore,
		notifier:       opts.Notifier,
		onUnauthorized: opts.OnUnauthorized,
		log:            logger,
	}
	c.requestInterceptors = []RequestInterceptor{c.authenticateRequest}
	c.responseInterceptors = []ResponseInterceptor{c.classifyResponse}
	return c, nil
}

// Get issues a GET to path with optional query parameters, decoding the
// response body into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with body JSON-encoded, decoding the response into
// out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with body JSON-encoded, decoding the response into
// out when out is non-nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE to path, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs a single attempt: no retries, no backoff.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	for _, intercept := range c.requestInterceptors {
		if err := intercept(ctx, req); err != nil {
			return err
		}
	}

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        u.String(),
		"request_id": req.Header.Get("X-Request-ID"),
	}).Debug("api request")

	resp, doErr := c.http.Do(req)
	var respBody []byte
	if doErr == nil {
		respBody, _ = io.ReadAll(resp.Body)
		resp.Body.Close()
	}

	// A call aborted by the caller skips classification and its side
	// effects entirely.
	if doErr != nil && ctx.Err() != nil {
		return doErr
	}

	callErr := doErr
	for _, intercept := range c.responseInterceptors {
		callErr = intercept(ctx, resp, respBody, callErr)
	}
	if callErr != nil {
		return callErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			// A success status with an undecodable body is still a
			// failed call; keep the taxonomy total over everything
			// this client returns.
			c.notify(SeverityError, msgUnexpected)
			return &Error{
				Kind:       KindUnknown,
				StatusCode: resp.StatusCode,
				Message:    msgUnexpected,
				cause:      fmt.Errorf("decode response body: %w", err),
			}
		}
	}
	return nil
}

func (c *Client) notify(severity Severity, message string) {
	if c.notifier != nil {
		c.notifier.Notify(severity, message)
	}
}
