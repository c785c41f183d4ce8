// Package reqsig signs and verifies WebIdentity requests.
//
// A signed request carries three headers: WebIdentity-Location (where the
// sender's identity document resides), WebIdentity-Timestamp (whole
// seconds since the Unix epoch) and WebIdentity-Signature (a hex-encoded
// Ed25519 signature). The signature covers a canonical string built from
// the request method, host, path, body hash, location claim and
// timestamp, so any of those changing after signing invalidates it.
//
// # Signing Requests
//
//	headers, err := reqsig.Sign(reqsig.Request{
//	    Method: "POST",
//	    Host:   "api.example.com",
//	    Path:   "/v1/messages",
//	    Body:   body,
//	}, reqsig.SignConfig{
//	    Location: "example.com/alice",
//	    Key:      privateKey,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	headers.Apply(req.Header)
//
// # Verifying Requests
//
// The verifier obtains the sender's public key by resolving the location
// claim to an identity document (see the identity package) and checks the
// request against it:
//
//	err := reqsig.Verify(req, reqsig.HTTPHeaders(r.Header), reqsig.VerifyConfig{
//	    PublicKey: ident.PublicKey,
//	    MaxAge:    5 * time.Minute,
//	})
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs all outgoing
// requests. Pass an *http.Transport to configure proxy, TLS, and timeout
// settings; pass nil for defaults:
//
//	client := &http.Client{
//	    Transport: reqsig.NewTransport(nil, reqsig.SignConfig{
//	        Location: "example.com/alice",
//	        Key:      privateKey,
//	    }),
//	}
//
// # Server Middleware
//
// Middleware returns a plain net/http middleware that verifies incoming
// requests and stores the sender's verified identity in the request
// context. The caller supplies an IdentityResolver that maps a location
// claim to an identity record; fetching and caching the identity
// document are the resolver's concern:
//
//	mw, err := reqsig.Middleware(reqsig.MiddlewareConfig{
//	    Resolver: resolver,
//	    MaxAge:   5 * time.Minute,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handler = mw(handler)
package reqsig
