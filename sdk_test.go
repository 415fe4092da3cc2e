package tablebridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tablebridge "github.com/tablefront/table-bridge"
	"github.com/tablefront/table-bridge/mock"
)

func newTestClient(t *testing.T, transport *mock.MockTransport, ceiling int) *tablebridge.Client {
	t.Helper()
	client, err := tablebridge.NewClient(tablebridge.Config{
		BaseURL:        "https://api.example.com",
		Credential:     tablebridge.Credential{AccessKey: "ak_test", SecretKey: "sk_test"},
		MaxPageCeiling: ceiling,
		Transport:      transport,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsEmptyCredential(t *testing.T) {
	tests := []struct {
		name string
		cred tablebridge.Credential
	}{
		{"missing access key", tablebridge.Credential{SecretKey: "sk"}},
		{"missing secret key", tablebridge.Credential{AccessKey: "ak"}},
		{"missing both", tablebridge.Credential{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tablebridge.NewClient(tablebridge.Config{
				BaseURL:    "https://api.example.com",
				Credential: tt.cred,
			})
			assert.Error(t, err)
		})
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := tablebridge.NewClient(tablebridge.Config{
		Credential: tablebridge.Credential{AccessKey: "ak", SecretKey: "sk"},
	})
	assert.Error(t, err)
}

func TestClientDoSignsBeforeDispatch(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{}`)
	client := newTestClient(t, transport, 0)

	_, err := client.Do(context.Background(), &tablebridge.Request{Method: "GET", Path: "/v1/venues"})
	require.NoError(t, err)

	reqs := transport.Requests()
	require.Len(t, reqs, 1)
	assert.NotEmpty(t, reqs[0].Headers[tablebridge.AuthorizationHeader])
	assert.NotEmpty(t, reqs[0].Headers[tablebridge.DateHeader])
	assert.Equal(t, tablebridge.SignatureVersion, reqs[0].Headers[tablebridge.SignatureVersionHeader])
}

func TestClientDoClassifiesErrors(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(404, `{"error":"no such guest"}`)
	client := newTestClient(t, transport, 0)

	resp, err := client.Do(context.Background(), &tablebridge.Request{Method: "GET", Path: "/v1/guests/g1"})
	require.ErrorIs(t, err, tablebridge.ErrNotFound)
	// The raw response still comes back for diagnostics.
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestClientDoPassesBodyThrough(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.EnqueueJSON(200, `{"id":"v1"}`)
	client := newTestClient(t, transport, 0)

	resp, err := client.Do(context.Background(), &tablebridge.Request{Method: "GET", Path: "/v1/venues/v1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"v1"}`, string(resp.Data))
}

func TestClientRecordsRateLimitInfo(t *testing.T) {
	transport := &mock.MockTransport{}
	transport.Enqueue(&tablebridge.Response{
		StatusCode: 200,
		Headers:    map[string]string{"x-ratelimit-remaining": "9"},
		Data:       []byte(`{}`),
	})
	client := newTestClient(t, transport, 0)

	require.Nil(t, client.RateLimitInfo())
	_, err := client.Do(context.Background(), &tablebridge.Request{Method: "GET", Path: "/v1/venues"})
	require.NoError(t, err)

	info := client.RateLimitInfo()
	require.NotNil(t, info)
	require.NotNil(t, info.RemainingRequests)
	assert.Equal(t, 9, *info.RemainingRequests)
}

func TestClientPageBudget(t *testing.T) {
	tests := []struct {
		name      string
		ceiling   int
		requested int
		want      int
	}{
		{"no ceiling, unbounded stays unbounded", 0, tablebridge.UnboundedPages, tablebridge.UnboundedPages},
		{"no ceiling, bounded unchanged", 0, 5, 5},
		{"ceiling caps unbounded", 10, tablebridge.UnboundedPages, 10},
		{"ceiling caps larger budget", 10, 50, 10},
		{"ceiling keeps smaller budget", 10, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, &mock.MockTransport{}, tt.ceiling)
			assert.Equal(t, tt.want, client.PageBudget(tt.requested))
		})
	}
}
