package reqsig

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// SignConfig configures request signing.
type SignConfig struct {
	// Location is the claim string identifying where the signer's
	// identity document resides. It is covered by the signature verbatim,
	// without resolution.
	Location string

	// Key is the Ed25519 signing key. Required.
	Key ed25519.PrivateKey

	// Now overrides the clock used for the timestamp. When nil, time.Now
	// is used.
	Now func() time.Time
}

// Sign builds the canonical string for r at the current time and signs
// it, producing the three WebIdentity header values.
func Sign(r Request, cfg SignConfig) (Headers, error) {
	if len(cfg.Key) != ed25519.PrivateKeySize {
		return Headers{}, fmt.Errorf("%w: ed25519 private key must be %d bytes", ErrInvalidKey, ed25519.PrivateKeySize)
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	timestamp := strconv.FormatInt(now().Unix(), 10)

	sig := ed25519.Sign(cfg.Key, canonicalString(r, cfg.Location, timestamp))

	return Headers{
		Location:  cfg.Location,
		Timestamp: timestamp,
		Signature: hex.EncodeToString(sig),
	}, nil
}
