package identity

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
)

// PublicKeyPrefix is the token that precedes the hex-encoded key bytes in
// the identity:public-key meta tag value.
const PublicKeyPrefix = "ed25519-pub:"

// ParsePublicKey parses the wire form "ed25519-pub:<64 hex chars>" into a
// verification key. The decoded bytes must be a canonical point on the
// Ed25519 curve; crypto/ed25519 alone does not enforce this at
// construction time.
func ParsePublicKey(s string) (ed25519.PublicKey, error) {
	rest, ok := strings.CutPrefix(s, PublicKeyPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: key must start with %q", ErrInvalidPublicKey, PublicKeyPrefix)
	}

	raw, err := hex.DecodeString(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex encoding", ErrInvalidPublicKey)
	}

	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidPublicKey, ed25519.PublicKeySize, len(raw))
	}

	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: not a valid curve point", ErrInvalidPublicKey)
	}

	return ed25519.PublicKey(raw), nil
}

// FormatPublicKey renders pub in the wire form used by the
// identity:public-key meta tag.
func FormatPublicKey(pub ed25519.PublicKey) string {
	return PublicKeyPrefix + hex.EncodeToString(pub)
}

// KeyID derives the stable identity identifier for pub: the hex-encoded
// SHA-256 digest of the raw key bytes.
func KeyID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)

	return hex.EncodeToString(sum[:])
}
