// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/helper/gc"
)

// Base URLs for the two supported upstream API versions.
const (
	BaseURLV1 = "https://api.pandadoc.com/public/v1"
	BaseURLV2 = "https://api.pandadoc.com/public/v2"
)

// Default per-call timeouts. JSON calls are short; binary downloads get a
// generous window because completed documents can be large PDFs.
const (
	DefaultTimeout  = 15 * time.Second
	DownloadTimeout = 60 * time.Second
)

// Version selects which upstream API base URL a call is composed against.
type Version int

// Supported API versions.
const (
	V1 Version = iota + 1
	V2
)

// ErrCredentialMissing is returned by [NewClient] when the named credential
// is not available to the fetcher. The CLI turns this into remediation text
// before any network call is attempted.
var ErrCredentialMissing = errors.New(`pandadoc credential is not configured`)

// successMarker is the synthetic body returned for HTTP 204 responses.
var successMarker = json.RawMessage(`{"success":true}`)

// APIError is a non-2xx upstream response. It carries the numeric status
// and the parsed error body for downstream formatting; the message is taken
// from the body's detail, message, or error field, in that order, falling
// back to "HTTP <status>".
type APIError struct {
	Status  int
	Data    map[string]any
	message string
}

// Error returns the upstream-sourced error message.
func (e *APIError) Error() string { return e.message }

// newAPIError builds an [APIError] from a status code and raw error body.
// A malformed or non-JSON body is tolerated and treated as an empty object.
func newAPIError(status int, body []byte) *APIError {
	data := map[string]any{}
	if len(body) > 0 {
		// Best effort: error bodies are frequently HTML or truncated.
		if err := json.Unmarshal(body, &data); err != nil {
			data = map[string]any{}
		}
	}

	message := fmt.Sprintf("HTTP %d", status)
	for _, field := range []string{"detail", "message", "error"} {
		if s, ok := data[field].(string); ok && s != "" {
			message = s
			break
		}
	}

	return &APIError{Status: status, Data: data, message: message}
}

// CallOptions configures a single API call.
type CallOptions struct {
	// Method defaults to GET.
	Method string
	// Endpoint is the path below the versioned base URL, e.g. "/documents".
	Endpoint string
	// Query is an already-encoded query string (see [Encode]), without "?".
	Query string
	// Body, when non-nil, is JSON-marshaled into the request body.
	Body any
	// Headers are merged over the defaults per call.
	Headers map[string]string
	// Timeout overrides [DefaultTimeout] when positive.
	Timeout time.Duration
	// Version selects the base URL; zero means [V1].
	Version Version
}

// Client is the authenticated request client. It composes URLs, applies
// default headers and timeouts, and funnels every request through the
// injected [CredentialFetcher]; it performs no retries and keeps no state
// between calls.
type Client struct {
	fetcher   CredentialFetcher
	userAgent string
}

// NewClient creates a client bound to the "pandadoc" credential. It fails
// with [ErrCredentialMissing] before any network call when the fetcher
// cannot see the credential.
func NewClient(fetcher CredentialFetcher, version string) (*Client, error) {
	if fetcher == nil {
		return nil, errors.New("api: nil credential fetcher")
	}
	if !fetcher.HasCredential(CredentialName) {
		return nil, ErrCredentialMissing
	}

	return &Client{
		fetcher:   fetcher,
		userAgent: fmt.Sprintf("PandaDoc-CLI/%s (+https://github.com/H0llyW00dzZ/pandadoc-cli)", version),
	}, nil
}

// Call performs a single JSON API call and returns the raw response body.
// HTTP 204 maps to the synthetic {"success":true} marker without touching
// the body; any non-2xx status returns an [*APIError].
func (c *Client) Call(ctx context.Context, opts CallOptions) (json.RawMessage, error) {
	status, body, err := c.do(ctx, opts, DefaultTimeout)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNoContent {
		return successMarker, nil
	}
	if status < 200 || status > 299 {
		return nil, newAPIError(status, body)
	}

	return json.RawMessage(body), nil
}

// Download performs a binary/text download and returns the raw response
// body unprocessed; the caller writes it to disk. No content validation is
// performed.
func (c *Client) Download(ctx context.Context, opts CallOptions) ([]byte, error) {
	status, body, err := c.do(ctx, opts, DownloadTimeout)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, newAPIError(status, body)
	}

	return body, nil
}

// do composes the request, delegates auth and transport to the fetcher,
// and drains the response body through the buffer pool.
func (c *Client) do(ctx context.Context, opts CallOptions, fallbackTimeout time.Duration) (int, []byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = fallbackTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fullURL := c.baseURL(opts.Version) + opts.Endpoint
	if opts.Query != "" {
		fullURL += "?" + opts.Query
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader *bytes.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	var req *http.Request
	var err error
	if bodyReader != nil {
		req, err = http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, fullURL, nil)
	}
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.fetcher.Do(ctx, CredentialName, req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	// Get a buffer from the pool
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	// Copy out before the buffer goes back to the pool
	body := append([]byte(nil), buf.Bytes()...)

	return resp.StatusCode, body, nil
}

// baseURL resolves the versioned base URL for a call.
func (c *Client) baseURL(v Version) string {
	if v == V2 {
		return BaseURLV2
	}
	return BaseURLV1
}
