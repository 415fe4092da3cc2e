package mock

import (
	"context"
	"fmt"
	"sync"

	tablebridge "github.com/tablefront/table-bridge"
)

// MockTransport is a scripted Transport for tests and examples. It replays
// queued responses in order and records every (already signed) request it
// receives, so tests can assert on signature headers and dispatch order.
type MockTransport struct {
	mu        sync.Mutex
	responses []*tablebridge.Response
	requests  []*tablebridge.Request

	// DefaultStatus is returned once the queue is drained. Zero means a
	// drained queue is an error.
	DefaultStatus int
	// DefaultBody accompanies DefaultStatus.
	DefaultBody []byte
}

// Enqueue appends a response to the replay queue.
func (m *MockTransport) Enqueue(resp *tablebridge.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// EnqueueJSON appends a response with the given status and JSON body.
func (m *MockTransport) EnqueueJSON(status int, body string) {
	m.Enqueue(&tablebridge.Response{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Data:       []byte(body),
	})
}

// Requests returns the requests seen so far, in dispatch order.
func (m *MockTransport) Requests() []*tablebridge.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*tablebridge.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockTransport) Execute(ctx context.Context, req *tablebridge.Request) (*tablebridge.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if len(m.responses) == 0 {
		if m.DefaultStatus != 0 {
			return &tablebridge.Response{
				StatusCode: m.DefaultStatus,
				Headers:    map[string]string{},
				Data:       m.DefaultBody,
			}, nil
		}
		return nil, fmt.Errorf("mock transport: no response queued for %s %s", req.Method, req.Path)
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}
