// canonical.go
// ------------
// Deterministic canonical form of an outbound request, the input to the
// signature. Two requests with the same method, path, parameter set, and
// body must canonicalize to the identical byte string regardless of the
// order parameters were added in; the server rebuilds this string to
// verify the signature.
package tablebridge

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// BuildCanonicalRequest returns the canonical string for req:
// METHOD, percent-encoded path, sorted query string, and the hex SHA-256
// of the body, joined with the literal '&'.
func BuildCanonicalRequest(req *Request) string {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = "GET"
	}

	return strings.Join([]string{
		method,
		canonicalPath(req.Path),
		canonicalQuery(req.Query),
		HashPayload(req.Body),
	}, "&")
}

// canonicalPath percent-encodes the path as one opaque string. It is not
// split into segments; slashes pass through unescaped.
func canonicalPath(path string) string {
	u := url.URL{Path: path}
	return u.EscapedPath()
}

// canonicalQuery encodes each key=value pair, sorts pairs byte-wise by
// encoded key, and joins them with '&'. The sort is stable so duplicate
// keys keep their relative order. An empty query yields an empty string.
func canonicalQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}

	type pair struct {
		key     string
		encoded string
	}

	pairs := make([]pair, 0, len(query))
	for key, values := range query {
		encKey := url.QueryEscape(key)
		for _, v := range values {
			pairs = append(pairs, pair{
				key:     encKey,
				encoded: encKey + "=" + url.QueryEscape(v),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].key < pairs[j].key
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.encoded
	}
	return strings.Join(parts, "&")
}

// HashPayload returns the hex SHA-256 of body. A nil or empty body hashes
// to EmptyBodySHA256, so GET requests and explicitly empty POST bodies
// canonicalize identically.
func HashPayload(body []byte) string {
	if len(body) == 0 {
		return EmptyBodySHA256
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
