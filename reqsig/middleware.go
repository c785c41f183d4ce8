package reqsig

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vitalvas/webidentity/identity"
)

// IdentityResolver returns the identity record for a location claim. The
// implementation typically resolves the location to a URL, fetches the
// identity document and parses it with identity.Parse; fetching and
// caching are the resolver's concern.
type IdentityResolver func(ctx context.Context, location string) (*identity.Identity, error)

// MiddlewareConfig configures the server-side verification middleware.
type MiddlewareConfig struct {
	// Resolver maps location claims to identities. Required.
	Resolver IdentityResolver

	// MaxAge and MaxSkew configure the freshness window, as in
	// VerifyConfig.
	MaxAge  time.Duration
	MaxSkew time.Duration

	// OnError is called when verification fails. When nil, a plain 401
	// Unauthorized response is sent.
	OnError func(w http.ResponseWriter, r *http.Request, err error)
}

// Middleware returns a net/http middleware that verifies the WebIdentity
// signature on each incoming request and stores the sender's verified
// identity in the request context for retrieval with FromContext.
//
// It returns ErrNoResolver if MiddlewareConfig.Resolver is nil.
func Middleware(cfg MiddlewareConfig) (func(http.Handler) http.Handler, error) {
	if cfg.Resolver == nil {
		return nil, ErrNoResolver
	}

	onError := cfg.OnError
	if onError == nil {
		onError = defaultOnError
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, err := verifyHTTP(r, cfg)
			if err != nil {
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
		})
	}, nil
}

// verifyHTTP resolves the claimed identity and verifies the request
// signature against its public key.
func verifyHTTP(r *http.Request, cfg MiddlewareConfig) (*identity.Identity, error) {
	location, ok := HTTPHeaders(r.Header).Lookup(HeaderLocation)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeader, HeaderLocation)
	}

	ident, err := cfg.Resolver(r.Context(), location)
	if err != nil {
		return nil, err
	}

	body, err := readAndRestoreBody(r)
	if err != nil {
		return nil, err
	}

	err = Verify(Request{
		Method: r.Method,
		Host:   r.Host,
		Path:   r.URL.Path,
		Body:   body,
	}, HTTPHeaders(r.Header), VerifyConfig{
		PublicKey: ident.PublicKey,
		MaxAge:    cfg.MaxAge,
		MaxSkew:   cfg.MaxSkew,
	})
	if err != nil {
		return nil, err
	}

	return ident, nil
}

type identityKey struct{}

func withIdentity(ctx context.Context, ident *identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// FromContext returns the verified identity stored by Middleware, or nil
// when the request did not pass through it.
func FromContext(ctx context.Context) *identity.Identity {
	ident, _ := ctx.Value(identityKey{}).(*identity.Identity)

	return ident
}

// defaultOnError writes a 401 Unauthorized response with no body.
func defaultOnError(w http.ResponseWriter, _ *http.Request, _ error) {
	w.WriteHeader(http.StatusUnauthorized)
}

// readAndRestoreBody reads the entire request body and replaces it with a
// new reader so the body can be consumed again by downstream handlers.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
