package identity

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveLocation resolves a free-form location string into an absolute
// http or https URL. When the string carries no scheme, "https://" is
// prepended.
//
// It returns ErrUnsupportedProtocol for any scheme other than http or
// https.
func ResolveLocation(location string) (*url.URL, error) {
	scheme, _, found := strings.Cut(location, "://")
	if !found {
		return parseLocation("https://" + location)
	}

	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, scheme)
	}

	return parseLocation(location)
}

func parseLocation(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("identity: parse location: %w", err)
	}

	return u, nil
}
