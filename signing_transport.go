// signing_transport.go
// --------------------
// The single chokepoint every outbound request passes through. It owns an
// immutable Credential, captures one timestamp per request, runs the
// canonicalize/sign chain, attaches the three signature headers, and only
// then hands the request to the wrapped Transport. Nothing can reach the
// inner transport unsigned.
package tablebridge

import (
	"context"
	"time"
)

// SigningTransport signs requests and delegates dispatch to the transport
// it wraps. It holds no mutable state, so independent call chains may use
// it concurrently.
type SigningTransport struct {
	credential Credential
	next       Transport

	// Clock supplies the signing timestamp; nil means time.Now. It exists
	// so tests can sign at a fixed instant.
	Clock func() time.Time
}

// NewSigningTransport wraps next so that every request dispatched through
// it carries Authorization, date, and signature-version headers derived
// from cred.
func NewSigningTransport(cred Credential, next Transport) *SigningTransport {
	return &SigningTransport{credential: cred, next: next}
}

// Execute signs req in place and dispatches it. The timestamp is captured
// once, so the canonical request, string to sign, and date header all see
// the same instant. The signature is not logged or cached; each request is
// signed fresh.
func (t *SigningTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := time.Now
	if t.Clock != nil {
		now = t.Clock
	}
	timestamp := now().UTC().Format(TimeFormat)

	canonical := BuildCanonicalRequest(req)
	stringToSign := BuildStringToSign(timestamp, t.credential.AccessKey, canonical)
	signature := BuildSignature(t.credential.SecretKey, stringToSign)

	req.setHeader(AuthorizationHeader, BuildAuthorizationHeader(t.credential.AccessKey, signature))
	req.setHeader(DateHeader, timestamp)
	req.setHeader(SignatureVersionHeader, SignatureVersion)

	return t.next.Execute(ctx, req)
}
