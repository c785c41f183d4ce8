package identity

import (
	"crypto/ed25519"
	"fmt"
	"html"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the publishing-side counterpart of Identity: the values a
// party embeds in the identity document it serves.
type Profile struct {
	// PublicKey is the verification key in wire form
	// ("ed25519-pub:<hex>"). Required.
	PublicKey string `yaml:"public_key"`

	// DisplayName, Avatar and Description populate the identity:* meta
	// tags. All three are optional.
	DisplayName string `yaml:"display_name,omitempty"`
	Avatar      string `yaml:"avatar,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// NewProfile builds a Profile declaring the given verification key.
func NewProfile(pub ed25519.PublicKey) Profile {
	return Profile{PublicKey: FormatPublicKey(pub)}
}

// LoadProfile decodes a YAML profile from r and validates it.
func LoadProfile(r io.Reader) (Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate checks that the profile carries a well-formed public key.
func (p Profile) Validate() error {
	if p.PublicKey == "" {
		return fmt.Errorf("%w: public_key is required", ErrInvalidProfile)
	}

	if _, err := ParsePublicKey(p.PublicKey); err != nil {
		return err
	}

	return nil
}

// WriteDocument renders a minimal HTML identity document whose meta tags
// parse back into an equivalent Identity.
func (p Profile) WriteDocument(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")

	writeMeta(&b, "identity:public-key", p.PublicKey)

	if p.DisplayName != "" {
		writeMeta(&b, "identity:display-name", p.DisplayName)
	}

	if p.Avatar != "" {
		writeMeta(&b, "identity:avatar", p.Avatar)
	}

	if p.Description != "" {
		writeMeta(&b, "identity:description", p.Description)
	}

	b.WriteString("</head>\n<body></body>\n</html>\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func writeMeta(b *strings.Builder, name, content string) {
	fmt.Fprintf(b, "  <meta name=\"%s\" content=\"%s\">\n", name, html.EscapeString(content))
}
