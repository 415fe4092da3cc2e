package tablebridge

// Wire constants for signature version 1 of the reservations API.
// The separators, field order, and label strings are load-bearing:
// the server recomputes the signature from the same material, so any
// drift here makes every request fail verification.

const (
	// SigningScheme is the Authorization header scheme name.
	SigningScheme = "TBW1"

	// AlgorithmLabel identifies the signature algorithm inside the
	// string to sign and the Authorization header.
	AlgorithmLabel = "HMAC-SHA1"

	// SignatureVersion is the fixed protocol identifier carried in the
	// signature-version header.
	SignatureVersion = "1.0"

	// AuthorizationHeader carries scheme, algorithm label, access key,
	// and signature.
	AuthorizationHeader = "Authorization"

	// DateHeader carries the ISO-8601 UTC timestamp captured at signing.
	DateHeader = "X-TBW-Date"

	// SignatureVersionHeader carries SignatureVersion.
	SignatureVersionHeader = "X-TBW-Signature-Version"

	// TimeFormat is the ISO-8601 layout used on the wire, always UTC.
	TimeFormat = "2006-01-02T15:04:05Z"

	// EmptyBodySHA256 is the hex SHA-256 of the empty string, used as the
	// payload hash for GET requests and explicitly empty bodies.
	EmptyBodySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)
