package reqsig

import "errors"

// Signing errors.
var (
	// ErrInvalidKey is returned when signing key material has the wrong
	// size.
	ErrInvalidKey = errors.New("reqsig: invalid key material")
)

// Verification errors.
var (
	// ErrMissingHeader is returned when one of the three WebIdentity
	// headers is absent from the header source.
	ErrMissingHeader = errors.New("reqsig: missing required header")

	// ErrInvalidTimestamp is returned when the timestamp header does not
	// parse as an unsigned integer.
	ErrInvalidTimestamp = errors.New("reqsig: invalid timestamp")

	// ErrTimestampExpired is returned when the asserted timestamp falls
	// outside the acceptance window, in either direction.
	ErrTimestampExpired = errors.New("reqsig: timestamp expired")

	// ErrSignatureMismatch is returned when the signature does not verify.
	// All cryptographic and signature-format failures collapse into this
	// one error so a caller cannot probe for the reason a signature was
	// rejected.
	ErrSignatureMismatch = errors.New("reqsig: signature mismatch")
)

// Middleware errors.
var (
	// ErrNoResolver is returned when MiddlewareConfig has no Resolver
	// configured.
	ErrNoResolver = errors.New("reqsig: identity resolver must not be nil")
)
