package tablebridge

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCanonicalRequestDeterminism(t *testing.T) {
	// Same parameter set added in two different orders must canonicalize
	// identically.
	q1 := url.Values{}
	q1.Set("b", "2")
	q1.Set("a", "1")

	q2 := url.Values{}
	q2.Set("a", "1")
	q2.Set("b", "2")

	r1 := &Request{Method: "GET", Path: "/v1/guests", Query: q1}
	r2 := &Request{Method: "GET", Path: "/v1/guests", Query: q2}

	c1 := BuildCanonicalRequest(r1)
	c2 := BuildCanonicalRequest(r2)
	require.Equal(t, c1, c2)

	// Running build twice on the same descriptor is stable.
	require.Equal(t, c1, BuildCanonicalRequest(r1))
}

func TestBuildCanonicalRequestQuerySort(t *testing.T) {
	q := url.Values{}
	q.Set("b", "2")
	q.Set("a", "1")

	got := BuildCanonicalRequest(&Request{Method: "GET", Path: "/v1/guests", Query: q})
	want := "GET&/v1/guests&a=1&b=2&" + EmptyBodySHA256
	assert.Equal(t, want, got)
}

func TestBuildCanonicalRequestDuplicateKeys(t *testing.T) {
	// Duplicate keys keep their relative order under the stable sort.
	q := url.Values{}
	q["tag"] = []string{"vip", "regular"}
	q.Set("a", "1")

	got := BuildCanonicalRequest(&Request{Method: "GET", Path: "/v1/guests", Query: q})
	want := "GET&/v1/guests&a=1&tag=vip&tag=regular&" + EmptyBodySHA256
	assert.Equal(t, want, got)
}

func TestBuildCanonicalRequestMethodDefaultsAndUppercases(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   string
	}{
		{"empty defaults to GET", "", "GET"},
		{"lowercase uppercased", "post", "POST"},
		{"already upper", "DELETE", "DELETE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCanonicalRequest(&Request{Method: tt.method, Path: "/v1/x"})
			assert.Equal(t, tt.want+"&/v1/x&&"+EmptyBodySHA256, got)
		})
	}
}

func TestBuildCanonicalRequestEmptyBodyHash(t *testing.T) {
	// A GET and a POST with an explicitly empty body hash identically.
	get := BuildCanonicalRequest(&Request{Method: "GET", Path: "/v1/guests"})
	post := BuildCanonicalRequest(&Request{Method: "POST", Path: "/v1/guests", Body: []byte{}})

	assert.Contains(t, get, EmptyBodySHA256)
	assert.Contains(t, post, EmptyBodySHA256)
}

func TestBuildCanonicalRequestBodyChangesHash(t *testing.T) {
	base := &Request{Method: "POST", Path: "/v1/guests", Body: []byte(`{"a":1}`)}
	other := &Request{Method: "POST", Path: "/v1/guests", Body: []byte(`{"a":2}`)}
	assert.NotEqual(t, BuildCanonicalRequest(base), BuildCanonicalRequest(other))
}

func TestCanonicalPathEscaping(t *testing.T) {
	// The path is encoded as one opaque string; slashes pass through,
	// reserved characters do not.
	got := BuildCanonicalRequest(&Request{Method: "GET", Path: "/v1/guests/a b"})
	assert.Equal(t, "GET&/v1/guests/a%20b&&"+EmptyBodySHA256, got)
}

func TestHashPayload(t *testing.T) {
	assert.Equal(t, EmptyBodySHA256, HashPayload(nil))
	assert.Equal(t, EmptyBodySHA256, HashPayload([]byte{}))
	assert.Len(t, HashPayload([]byte("x")), 64)
}
