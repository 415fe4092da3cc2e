// sdk.go
// ------
// The core Client and its Do method, the entry point of the SDK. A Client
// owns one credential, one transport chain, and the latest rate-limit
// telemetry; resource services in the resources package build request
// descriptors and hand them here.
//
// Key functionality:
// - Constructing a client with NewClient(), which validates the credential
//   once and wires the HTTPTransport -> SigningTransport chain.
// - Sending requests via Do(), which signs, dispatches, records rate-limit
//   headers, and classifies the response status.
// - PageBudget(), which applies the configured hard page ceiling to a
//   caller-requested pagination budget.
package tablebridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const defaultUserAgent = "table-bridge-go/1.0"

// Client issues signed requests against one reservations API deployment.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	config     Config
	transport  Transport
	rateLimits *rateLimitStore
	logger     hclog.Logger
}

// NewClient validates cfg and assembles the transport chain. An empty
// access or secret key fails here, at construction, so signing itself can
// never fail later.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{Name: "table-bridge"})
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	inner := cfg.Transport
	if inner == nil {
		inner = &HTTPTransport{BaseURL: cfg.BaseURL, UserAgent: userAgent}
	}

	return &Client{
		config:     cfg,
		transport:  NewSigningTransport(cfg.Credential, inner),
		rateLimits: newRateLimitStore(),
		logger:     logger,
	}, nil
}

// Do signs and dispatches req, then classifies the response. On a 2xx the
// response body is returned unchanged for the caller to decode; on any
// other status the response is returned together with an *APIError. The
// request is consumed: its headers are mutated by signing and it must not
// be reused.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	traceID := uuid.NewString()
	c.logger.Debug("dispatching request",
		"trace_id", traceID,
		"method", req.Method,
		"path", req.Path,
	)

	resp, err := c.transport.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute %s %s: %w", req.Method, req.Path, err)
	}

	c.rateLimits.update(resp)

	if err := Classify(resp); err != nil {
		c.logger.Debug("request failed",
			"trace_id", traceID,
			"status", resp.StatusCode,
		)
		return resp, err
	}

	c.logger.Debug("request succeeded",
		"trace_id", traceID,
		"status", resp.StatusCode,
	)
	return resp, nil
}

// RateLimitInfo returns the most recent rate-limit telemetry observed on a
// response, or nil if no response carried any. The client never acts on
// it; throttling policy belongs to the caller.
func (c *Client) RateLimitInfo() *RateLimitInfo {
	return c.rateLimits.latest()
}

// PageBudget reconciles a caller-requested page budget with the client's
// MaxPageCeiling. An unbounded request stays unbounded unless a ceiling is
// configured; a bounded request is clamped to the ceiling.
func (c *Client) PageBudget(requested int) int {
	ceiling := c.config.MaxPageCeiling
	if ceiling == 0 {
		return requested
	}
	if requested == UnboundedPages || requested > ceiling {
		return ceiling
	}
	return requested
}
