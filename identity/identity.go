package identity

import (
	"crypto/ed25519"
	"net/url"
	"strings"
)

// Identity is a normalized identity record derived from a published
// identity document. It is immutable once constructed; Parse is the only
// constructor.
type Identity struct {
	// ID is the stable identifier: the hex-encoded SHA-256 digest of the
	// raw public-key bytes.
	ID string

	// PublicKey is the Ed25519 verification key declared by the document.
	PublicKey ed25519.PublicKey

	// DisplayName is always present. When no metadata source yields a
	// name, it falls back to Location.
	DisplayName string

	// Avatar is the resolved absolute URL of a profile image, or nil.
	Avatar *url.URL

	// Description is optional free text; empty when the document has none.
	Description string

	// Location is the normalized host+path of the document with the
	// trailing slash stripped.
	Location string

	// LocationURL is the URL the document was fetched from.
	LocationURL *url.URL
}

// Parse extracts metadata from identity document content and resolves it
// into an Identity. sourceURL is the URL the document was fetched from;
// it is trusted as the resolution target and serves as the base for
// relative avatar references.
//
// The identity:public-key meta tag is the only mandatory value. Every
// other field resolves through a fallback chain and never fails: a
// missing display name falls back to the location string, an avatar that
// does not resolve is simply absent.
func Parse(sourceURL *url.URL, content []byte) (*Identity, error) {
	raw := extract(content)

	if raw.publicKey == "" {
		return nil, ErrMissingPublicKey
	}

	pub, err := ParsePublicKey(raw.publicKey)
	if err != nil {
		return nil, err
	}

	location := strings.TrimRight(sourceURL.Hostname()+sourceURL.Path, "/")

	name := firstNonEmpty(raw.displayName, raw.author, raw.ogAuthor, raw.ogTitle)
	if name == "" {
		name = location
	}

	var avatar *url.URL
	if ref := firstNonEmpty(raw.avatar, raw.ogImage, raw.favicon); ref != "" {
		if resolved, err := sourceURL.Parse(ref); err == nil {
			avatar = resolved
		}
	}

	return &Identity{
		ID:          KeyID(pub),
		PublicKey:   pub,
		DisplayName: name,
		Avatar:      avatar,
		Description: firstNonEmpty(raw.description, raw.ogDescription),
		Location:    location,
		LocationURL: sourceURL,
	}, nil
}

// firstNonEmpty walks a fallback chain and returns the first value that
// is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
