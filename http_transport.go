// http_transport.go
// -----------------
// Default Transport: dispatches a normalized request over net/http and
// normalizes the response. Connection pooling, TLS, and deadlines belong
// to the caller-supplied *http.Client; a context deadline is the only
// bound on how long a dispatch may block.
package tablebridge

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
)

// HTTPTransport executes requests against BaseURL using Client.
type HTTPTransport struct {
	BaseURL   string
	Client    *http.Client
	UserAgent string
}

func (t *HTTPTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	httpClient := t.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	fullURL := strings.TrimRight(t.BaseURL, "/") + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("Content-Type") == "" && len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.UserAgent != "" {
		httpReq.Header.Set("User-Agent", t.UserAgent)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for k, vals := range resp.Header {
		if len(vals) > 0 {
			headers[strings.ToLower(k)] = vals[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Data:       data,
	}, nil
}
