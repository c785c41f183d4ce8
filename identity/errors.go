package identity

import "errors"

// Resolution errors.
var (
	// ErrUnsupportedProtocol is returned when a location string carries a
	// scheme other than http or https.
	ErrUnsupportedProtocol = errors.New("identity: unsupported protocol")
)

// Parsing errors.
var (
	// ErrMissingPublicKey is returned when the document has no
	// identity:public-key meta tag.
	ErrMissingPublicKey = errors.New("identity: identity:public-key meta tag not found")

	// ErrInvalidPublicKey is returned when the identity:public-key value
	// has the wrong prefix, is not valid hex, has the wrong length, or
	// does not decode to a canonical Ed25519 point.
	ErrInvalidPublicKey = errors.New("identity: invalid public key")
)

// Profile errors.
var (
	// ErrInvalidProfile is returned when a Profile fails validation or
	// cannot be decoded.
	ErrInvalidProfile = errors.New("identity: invalid profile")
)
