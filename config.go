// config.go
// ---------
// Client configuration and credentials. A Credential is validated once at
// client construction and is immutable afterwards: signing itself never
// fails per request, only here. The secret key is used solely as an HMAC
// key and is never written to a header, a log line, or the wire.
package tablebridge

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Credential identifies the caller to the reservations API.
type Credential struct {
	AccessKey string
	SecretKey string
}

// Validate reports an error if either key is empty.
func (c Credential) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccessKey, validation.Required),
		validation.Field(&c.SecretKey, validation.Required),
	)
}

// Config carries per-client settings. Zero values fall back to defaults in
// NewClient, except Credential and BaseURL which are required.
type Config struct {
	// BaseURL is the scheme and host of the API, e.g. "https://api.example.com".
	BaseURL string

	// Credential is the access/secret key pair used for request signing.
	Credential Credential

	// UserAgent overrides the default User-Agent header if set.
	UserAgent string

	// MaxPageCeiling caps every pagination loop issued through this
	// client, including loops the caller requested as unbounded. It
	// guards against a misbehaving server that never clears its
	// more-data flag. 0 disables the ceiling.
	MaxPageCeiling int

	// Logger receives debug-level request traces. Defaults to a named
	// hclog logger at the default level.
	Logger hclog.Logger

	// Transport performs the actual dispatch after signing. Defaults to
	// an HTTPTransport over http.DefaultClient. Mainly useful for tests.
	Transport Transport
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
	); err != nil {
		return err
	}
	return c.Credential.Validate()
}
