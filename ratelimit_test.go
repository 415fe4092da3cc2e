package tablebridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStoreParsesHeaders(t *testing.T) {
	s := newRateLimitStore()
	s.update(&Response{
		StatusCode: 200,
		Headers: map[string]string{
			"x-ratelimit-limit":     "120",
			"x-ratelimit-remaining": "7",
			"x-ratelimit-reset":     "1764590400",
		},
	})

	info := s.latest()
	require.NotNil(t, info)
	require.NotNil(t, info.MaxRequests)
	assert.Equal(t, 120, *info.MaxRequests)
	require.NotNil(t, info.RemainingRequests)
	assert.Equal(t, 7, *info.RemainingRequests)
	require.NotNil(t, info.ResetAt)
	assert.Equal(t, int64(1764590400)*1000, *info.ResetAt)
}

func TestRateLimitStoreIgnoresBareResponses(t *testing.T) {
	s := newRateLimitStore()
	s.update(&Response{StatusCode: 200, Headers: map[string]string{
		"x-ratelimit-remaining": "3",
	}})
	// A later response without rate-limit headers keeps the last info.
	s.update(&Response{StatusCode: 200, Headers: map[string]string{}})

	info := s.latest()
	require.NotNil(t, info)
	require.NotNil(t, info.RemainingRequests)
	assert.Equal(t, 3, *info.RemainingRequests)
}

func TestRateLimitRetryAfterWins(t *testing.T) {
	s := newRateLimitStore()
	before := time.Now().UnixMilli()
	s.update(&Response{StatusCode: 429, Headers: map[string]string{
		"retry-after": "30",
	}})

	info := s.latest()
	require.NotNil(t, info)
	require.NotNil(t, info.ResetAt)
	assert.GreaterOrEqual(t, *info.ResetAt, before+30_000)
}

func TestRateLimitLatestIsNilInitially(t *testing.T) {
	assert.Nil(t, newRateLimitStore().latest())
}
