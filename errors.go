// errors.go
// ---------
// Maps transport status codes onto the closed set of error kinds the API
// can produce. Classification happens once, immediately after dispatch;
// the error is then surfaced to the caller unchanged. Nothing here retries
// or suppresses — recovery policy belongs to the caller.
package tablebridge

import (
	"errors"
	"fmt"
)

// Error kinds classified from response status codes. Match with errors.Is.
var (
	// ErrUnauthorized covers 401 and 403: bad credentials or a signature
	// the server could not verify.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers 405: the resource is in a state that rejects the
	// operation, e.g. a visit already arrived or seated.
	ErrConflict = errors.New("conflict")

	// ErrGone covers 410: the resource is no longer active, e.g. an
	// expired wait-list entry.
	ErrGone = errors.New("gone")

	// ErrServerError covers 500.
	ErrServerError = errors.New("server error")

	// ErrUnknown covers every other non-2xx status.
	ErrUnknown = errors.New("unknown error")

	// ErrMalformedResponse indicates a page envelope missing the cutoff
	// or more-data fields pagination needs to continue.
	ErrMalformedResponse = errors.New("malformed page response")
)

// APIError is the classified form of a non-2xx response. It wraps one of
// the kind sentinels and keeps the raw status and body for diagnostics.
type APIError struct {
	StatusCode int
	Kind       error
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %v", e.StatusCode, e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// Classify inspects a response status. On 2xx it returns nil and the body
// is the caller's to interpret; otherwise it returns an *APIError wrapping
// the matching kind.
func Classify(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var kind error
	switch resp.StatusCode {
	case 401, 403:
		kind = ErrUnauthorized
	case 404:
		kind = ErrNotFound
	case 405:
		kind = ErrConflict
	case 410:
		kind = ErrGone
	case 500:
		kind = ErrServerError
	default:
		kind = ErrUnknown
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Kind:       kind,
		Body:       resp.Data,
	}
}
