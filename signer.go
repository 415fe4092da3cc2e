// signer.go
// ---------
// Second stage of the signature chain: the canonical request is hashed,
// combined with the algorithm label, timestamp, and access key into the
// string to sign, then HMAC-SHA1'd under the secret key. Both stages are
// pure functions of their inputs; re-signing the same request at the same
// timestamp reproduces the same signature.
package tablebridge

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// BuildStringToSign joins the algorithm label, the ISO-8601 timestamp, the
// access key, and the hex SHA-256 of the canonical request with '&'.
func BuildStringToSign(timestamp, accessKey, canonicalRequest string) string {
	sum := sha256.Sum256([]byte(canonicalRequest))
	return strings.Join([]string{
		AlgorithmLabel,
		timestamp,
		accessKey,
		hex.EncodeToString(sum[:]),
	}, "&")
}

// BuildSignature computes the lowercase-hex HMAC-SHA1 of stringToSign
// keyed by the secret key.
func BuildSignature(secretKey, stringToSign string) string {
	mac := hmac.New(sha1.New, []byte(secretKey))
	mac.Write([]byte(stringToSign))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildAuthorizationHeader assembles the Authorization header value:
// scheme, then Algorithm, Credentials, and Signature fields joined by '&'.
func BuildAuthorizationHeader(accessKey, signature string) string {
	var b strings.Builder
	b.WriteString(SigningScheme)
	b.WriteByte(' ')
	b.WriteString("Algorithm=")
	b.WriteString(AlgorithmLabel)
	b.WriteString("&Credentials=")
	b.WriteString(accessKey)
	b.WriteString("&Signature=")
	b.WriteString(signature)
	return b.String()
}
