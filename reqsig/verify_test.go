package reqsig

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	req := Request{
		Method: "POST",
		Host:   "api.example.com",
		Path:   "/v1/messages",
		Body:   []byte("payload"),
	}

	fixed := time.Unix(1700000000, 0)
	clock := func() time.Time { return fixed }

	sign := func(t *testing.T, r Request) Headers {
		t.Helper()

		headers, err := Sign(r, SignConfig{
			Location: "example.com/alice",
			Key:      priv,
			Now:      clock,
		})
		require.NoError(t, err)

		return headers
	}

	verifyCfg := VerifyConfig{
		PublicKey: pub,
		MaxAge:    time.Minute,
		Now:       clock,
	}

	t.Run("round trip", func(t *testing.T) {
		headers := sign(t, req)
		assert.NoError(t, Verify(req, MapSource(headers.Map()), verifyCfg))
	})

	t.Run("trailing slash equivalence", func(t *testing.T) {
		headers := sign(t, req)

		trailing := req
		trailing.Path = "/v1/messages/"

		assert.NoError(t, Verify(trailing, MapSource(headers.Map()), verifyCfg))
	})

	t.Run("tampered method", func(t *testing.T) {
		headers := sign(t, req)

		tampered := req
		tampered.Method = "DELETE"

		assert.ErrorIs(t, Verify(tampered, MapSource(headers.Map()), verifyCfg), ErrSignatureMismatch)
	})

	t.Run("tampered host", func(t *testing.T) {
		headers := sign(t, req)

		tampered := req
		tampered.Host = "attacker.example.com"

		assert.ErrorIs(t, Verify(tampered, MapSource(headers.Map()), verifyCfg), ErrSignatureMismatch)
	})

	t.Run("tampered path", func(t *testing.T) {
		headers := sign(t, req)

		tampered := req
		tampered.Path = "/v1/admin"

		assert.ErrorIs(t, Verify(tampered, MapSource(headers.Map()), verifyCfg), ErrSignatureMismatch)
	})

	t.Run("tampered body", func(t *testing.T) {
		headers := sign(t, req)

		tampered := req
		tampered.Body = []byte("other payload")

		assert.ErrorIs(t, Verify(tampered, MapSource(headers.Map()), verifyCfg), ErrSignatureMismatch)
	})

	t.Run("tampered location claim", func(t *testing.T) {
		headers := sign(t, req)
		headers.Location = "example.com/mallory"

		assert.ErrorIs(t, Verify(req, MapSource(headers.Map()), verifyCfg), ErrSignatureMismatch)
	})

	t.Run("missing headers", func(t *testing.T) {
		headers := sign(t, req)

		for _, name := range []string{HeaderLocation, HeaderTimestamp, HeaderSignature} {
			src := MapSource(headers.Map())
			delete(src, name)

			err := Verify(req, src, verifyCfg)
			require.ErrorIs(t, err, ErrMissingHeader)
			assert.ErrorContains(t, err, name)
		}
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		headers := sign(t, req)

		src := MapSource(headers.Map())
		src[HeaderTimestamp] = "not-a-number"

		assert.ErrorIs(t, Verify(req, src, verifyCfg), ErrInvalidTimestamp)
	})

	t.Run("negative timestamp", func(t *testing.T) {
		headers := sign(t, req)

		src := MapSource(headers.Map())
		src[HeaderTimestamp] = "-5"

		assert.ErrorIs(t, Verify(req, src, verifyCfg), ErrInvalidTimestamp)
	})

	t.Run("expired timestamp", func(t *testing.T) {
		headers := sign(t, req)

		cfg := verifyCfg
		cfg.Now = func() time.Time { return fixed.Add(2 * time.Minute) }

		assert.ErrorIs(t, Verify(req, MapSource(headers.Map()), cfg), ErrTimestampExpired)
	})

	t.Run("timestamp within the window", func(t *testing.T) {
		headers := sign(t, req)

		cfg := verifyCfg
		cfg.Now = func() time.Time { return fixed.Add(30 * time.Second) }

		assert.NoError(t, Verify(req, MapSource(headers.Map()), cfg))
	})

	t.Run("future timestamp beyond skew", func(t *testing.T) {
		headers := sign(t, req)

		cfg := verifyCfg
		cfg.Now = func() time.Time { return fixed.Add(-2 * time.Minute) }

		assert.ErrorIs(t, Verify(req, MapSource(headers.Map()), cfg), ErrTimestampExpired)
	})

	t.Run("future timestamp within skew", func(t *testing.T) {
		headers := sign(t, req)

		cfg := verifyCfg
		cfg.Now = func() time.Time { return fixed.Add(-10 * time.Second) }

		assert.NoError(t, Verify(req, MapSource(headers.Map()), cfg))
	})

	t.Run("signature not hex", func(t *testing.T) {
		headers := sign(t, req)

		src := MapSource(headers.Map())
		src[HeaderSignature] = "zz-not-hex"

		assert.ErrorIs(t, Verify(req, src, verifyCfg), ErrSignatureMismatch)
	})

	t.Run("signature truncated", func(t *testing.T) {
		headers := sign(t, req)

		src := MapSource(headers.Map())
		src[HeaderSignature] = headers.Signature[:32]

		assert.ErrorIs(t, Verify(req, src, verifyCfg), ErrSignatureMismatch)
	})

	t.Run("wrong public key", func(t *testing.T) {
		headers := sign(t, req)

		other, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		cfg := verifyCfg
		cfg.PublicKey = other

		assert.ErrorIs(t, Verify(req, MapSource(headers.Map()), cfg), ErrSignatureMismatch)
	})

	t.Run("malformed public key collapses to mismatch", func(t *testing.T) {
		headers := sign(t, req)

		cfg := verifyCfg
		cfg.PublicKey = pub[:16]

		assert.ErrorIs(t, Verify(req, MapSource(headers.Map()), cfg), ErrSignatureMismatch)
	})

	t.Run("http header source", func(t *testing.T) {
		headers := sign(t, req)

		h := make(http.Header)
		headers.Apply(h)

		assert.NoError(t, Verify(req, HTTPHeaders(h), verifyCfg))
	})

	t.Run("empty http header source", func(t *testing.T) {
		assert.ErrorIs(t, Verify(req, HTTPHeaders(make(http.Header)), verifyCfg), ErrMissingHeader)
	})
}
