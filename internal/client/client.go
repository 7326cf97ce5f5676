// Package client issues the single outbound request to the outreach generation service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/pitchkraft/internal/types"
)

// DefaultBaseURL is where `pitchkraft serve` listens by default.
const DefaultBaseURL = "http://localhost:8000"

// GeneratePath is the service endpoint that turns a job URL into outreach drafts.
const GeneratePath = "/generate"

// ServiceError is returned when the service answered with a non-success status.
// Message is the service-provided text and may be empty.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("generation service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("generation service returned %d", e.StatusCode)
}

// TransportError is returned when the request could not complete or the
// response body could not be decoded.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
}

// DefaultOptions returns the local service address and an http.Client without a timeout;
// requests run until the transport settles them.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

// Client talks to the generation service over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a client. A nil opts uses DefaultOptions.
func New(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint: strings.TrimRight(base, "/") + GeneratePath,
		http:     httpClient,
	}
}

// Endpoint returns the full URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate posts {"url": jobURL} and returns the results in service order.
func (c *Client) Generate(ctx context.Context, jobURL string) ([]types.GenerationResult, error) {
	body, err := json.Marshal(types.GenerateRequest{URL: jobURL})
	if err != nil {
		return nil, &TransportError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A non-JSON error body still counts as a service failure, just without a message.
		var errResp types.ErrorResponse
		_ = json.Unmarshal(data, &errResp)
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var out types.GenerateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &TransportError{Message: "malformed response body", Cause: err}
	}
	if out.Results == nil {
		out.Results = []types.GenerationResult{}
	}
	return out.Results, nil
}
