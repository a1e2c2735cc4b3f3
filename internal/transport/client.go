// Package transport provides the HTTP layer shared by every z/OSMF
// endpoint: it turns assembled Request values into wire calls, carries the
// session cookie issued at login, and surfaces non-success responses as
// typed API errors. It never retries unless explicitly configured to.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/zosmf-community/zosmf-go/pkg/zosmf"
)

const defaultUserAgent = "zosmf-go"

// Response is the transport-level response envelope: status, headers, and
// the body read in full. The resolution rules borrow it read-only.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client executes assembled requests against one z/OSMF instance. It is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     zosmf.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug logging.
func WithLogger(logger zosmf.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport-level retries for transient failures.
// Retrying is a caller decision; without this option every failure is
// surfaced immediately.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. to supply a
// custom TLS configuration. The session cookie jar is installed on it if
// it does not already have one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient.Jar == nil {
			httpClient.Jar = c.httpClient.HTTPClient.Jar
		}

		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a transport client for the given base URL. The client
// holds a cookie jar so the LTPA session token issued by the authenticate
// service is carried on subsequent requests.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	jar, _ := cookiejar.New(nil)
	retryClient.HTTPClient.Jar = jar

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the base URL this client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes one request. Non-2xx statuses are returned as a parsed
// *zosmf.APIError alongside the response envelope; a 304 is a success when
// the request allows it. Do issues exactly one call per invocation unless
// retries were explicitly enabled.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target := c.baseURL + req.Path
	if rawQuery := req.EncodeQuery(); rawQuery != "" {
		target += "?" + rawQuery
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	for _, param := range req.Header {
		httpReq.Header.Set(param.Key, param.Value)
	}

	if req.hasBasicAuth {
		httpReq.SetBasicAuth(req.basicAuthUser, req.basicAuthPass)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    target,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         target,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode == http.StatusNotModified && req.AllowNotModified {
		return resp, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, zosmf.ParseAPIError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}
