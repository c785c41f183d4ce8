package reqsig

import "net/http"

// Wire-level header names.
const (
	HeaderLocation  = "WebIdentity-Location"
	HeaderTimestamp = "WebIdentity-Timestamp"
	HeaderSignature = "WebIdentity-Signature"
)

// Headers holds the three signed-request header values produced by Sign.
type Headers struct {
	Location  string
	Timestamp string
	Signature string
}

// Apply sets the three WebIdentity headers on h.
func (s Headers) Apply(h http.Header) {
	h.Set(HeaderLocation, s.Location)
	h.Set(HeaderTimestamp, s.Timestamp)
	h.Set(HeaderSignature, s.Signature)
}

// Map returns the headers as a name-to-value map.
func (s Headers) Map() map[string]string {
	return map[string]string{
		HeaderLocation:  s.Location,
		HeaderTimestamp: s.Timestamp,
		HeaderSignature: s.Signature,
	}
}

// HeaderSource looks up a header value by name. The second return value
// reports whether the header is present.
type HeaderSource interface {
	Lookup(name string) (string, bool)
}

// MapSource is a map-backed HeaderSource.
type MapSource map[string]string

// Lookup implements HeaderSource.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]

	return v, ok
}

// HTTPHeaders adapts an http.Header into a HeaderSource. When a header
// carries multiple values, the first one is used.
func HTTPHeaders(h http.Header) HeaderSource {
	return httpHeaderSource{h: h}
}

type httpHeaderSource struct {
	h http.Header
}

func (s httpHeaderSource) Lookup(name string) (string, bool) {
	values := s.h.Values(name)
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}
