// ratelimit.go
// ------------
// Passive rate-limit telemetry. The API reports remaining quota through
// x-ratelimit-* response headers; the client records the latest values so
// callers can pace themselves. The client itself never sleeps, retries, or
// backs off — that policy is deliberately left outside the SDK.
package tablebridge

import (
	"strconv"
	"sync"
	"time"
)

// RateLimitInfo is the quota state parsed from one response. Fields are
// pointers so "header absent" is distinguishable from zero.
type RateLimitInfo struct {
	MaxRequests       *int
	RemainingRequests *int
	ResetAt           *int64 // unix milliseconds
}

type rateLimitStore struct {
	mu   sync.Mutex
	info *RateLimitInfo
}

func newRateLimitStore() *rateLimitStore {
	return &rateLimitStore{}
}

// update parses rate-limit headers from resp and keeps them if any were
// present. Responses without rate-limit headers leave the last-known info
// untouched.
func (s *rateLimitStore) update(resp *Response) {
	info := parseRateLimitHeaders(resp.Headers)
	if info == nil {
		return
	}
	s.mu.Lock()
	s.info = info
	s.mu.Unlock()
}

// latest returns a copy of the most recent info, or nil.
func (s *rateLimitStore) latest() *RateLimitInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info == nil {
		return nil
	}
	copyInfo := *s.info
	return &copyInfo
}

func parseRateLimitHeaders(headers map[string]string) *RateLimitInfo {
	parseInt := func(key string) *int {
		if val, ok := headers[key]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
		}
		return nil
	}

	info := &RateLimitInfo{
		MaxRequests:       parseInt("x-ratelimit-limit"),
		RemainingRequests: parseInt("x-ratelimit-remaining"),
	}

	if val, ok := headers["x-ratelimit-reset"]; ok {
		if ts, err := strconv.ParseInt(val, 10, 64); err == nil {
			ms := ts * 1000
			info.ResetAt = &ms
		}
	}

	// retry-after is in seconds and only present when throttled.
	if val, ok := headers["retry-after"]; ok {
		if sec, err := strconv.Atoi(val); err == nil {
			future := time.Now().UnixMilli() + int64(sec)*1000
			if info.ResetAt == nil || future > *info.ResetAt {
				info.ResetAt = &future
			}
		}
	}

	if info.MaxRequests == nil && info.RemainingRequests == nil && info.ResetAt == nil {
		return nil
	}
	return info
}
