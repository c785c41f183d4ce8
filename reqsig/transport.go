package reqsig

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that signs outgoing requests with the
// three WebIdentity headers.
//
// Use NewTransport to create a Transport with a configured *http.Transport
// for proxy, TLS, and timeout settings.
type Transport struct {
	base   http.RoundTripper
	config SignConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used, giving an independent connection pool with default proxy, TLS,
// and timeout settings.
func NewTransport(base *http.Transport, cfg SignConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   rt,
		config: cfg,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. When
// GetBody is available, the body is hashed from a fresh copy so the
// caller's body is not consumed.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	var body []byte
	if req.Body != nil {
		rc := req.Body
		if req.GetBody != nil {
			var err error
			rc, err = req.GetBody()
			if err != nil {
				return nil, err
			}
		}

		var err error
		body, err = io.ReadAll(rc)
		rc.Close()

		if err != nil {
			return nil, err
		}

		clone.Body = io.NopCloser(bytes.NewReader(body))
	}

	host := clone.Host
	if host == "" {
		host = clone.URL.Host
	}

	path := clone.URL.Path
	if path == "" {
		path = "/"
	}

	headers, err := Sign(Request{
		Method: clone.Method,
		Host:   host,
		Path:   path,
		Body:   body,
	}, t.config)
	if err != nil {
		return nil, err
	}

	headers.Apply(clone.Header)

	return t.base.RoundTrip(clone)
}
