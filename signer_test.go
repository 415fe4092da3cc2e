package tablebridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStringToSignLayout(t *testing.T) {
	sts := BuildStringToSign("2026-08-01T12:00:00Z", "ak_test", "GET&/v1/guests&&"+EmptyBodySHA256)

	parts := strings.Split(sts, "&")
	require.Len(t, parts, 4)
	assert.Equal(t, AlgorithmLabel, parts[0])
	assert.Equal(t, "2026-08-01T12:00:00Z", parts[1])
	assert.Equal(t, "ak_test", parts[2])
	// Final component is the hex SHA-256 of the canonical request.
	assert.Len(t, parts[3], 64)
}

func TestBuildSignatureReproducible(t *testing.T) {
	sts := BuildStringToSign("2026-08-01T12:00:00Z", "ak_test", "GET&/v1/guests&&"+EmptyBodySHA256)

	sig1 := BuildSignature("sk_test", sts)
	sig2 := BuildSignature("sk_test", sts)
	assert.Equal(t, sig1, sig2)

	// HMAC-SHA1 output, lowercase hex.
	assert.Len(t, sig1, 40)
	assert.Equal(t, strings.ToLower(sig1), sig1)
}

func TestBuildSignatureSensitivity(t *testing.T) {
	canonical := "GET&/v1/guests&&" + EmptyBodySHA256
	sts := BuildStringToSign("2026-08-01T12:00:00Z", "ak_test", canonical)
	base := BuildSignature("sk_test", sts)

	t.Run("secret key", func(t *testing.T) {
		assert.NotEqual(t, base, BuildSignature("sk_other", sts))
	})
	t.Run("timestamp", func(t *testing.T) {
		other := BuildStringToSign("2026-08-01T12:00:01Z", "ak_test", canonical)
		assert.NotEqual(t, base, BuildSignature("sk_test", other))
	})
	t.Run("body", func(t *testing.T) {
		changed := BuildCanonicalRequest(&Request{Method: "POST", Path: "/v1/guests", Body: []byte(`{}`)})
		other := BuildStringToSign("2026-08-01T12:00:00Z", "ak_test", changed)
		assert.NotEqual(t, base, BuildSignature("sk_test", other))
	})
}

func TestBuildAuthorizationHeader(t *testing.T) {
	got := BuildAuthorizationHeader("ak_test", "deadbeef")
	assert.Equal(t, "TBW1 Algorithm=HMAC-SHA1&Credentials=ak_test&Signature=deadbeef", got)
}
