package reqsig

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Request carries the attributes of an HTTP request covered by a
// WebIdentity signature. It is transport-agnostic: Transport and
// Middleware fill it from net/http requests, other transports can fill
// it directly.
type Request struct {
	Method string
	Host   string
	Path   string
	Body   []byte
}

// canonicalString builds the exact byte sequence that is signed: the
// uppercased method, host, path with the trailing slash trimmed (a bare
// "/" is kept as-is), the hex SHA-256 digest of the body, the verbatim
// location claim and the decimal timestamp, joined with newlines.
func canonicalString(r Request, location, timestamp string) []byte {
	path := r.Path
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}

	sum := sha256.Sum256(r.Body)

	lines := []string{
		strings.ToUpper(r.Method),
		r.Host,
		path,
		hex.EncodeToString(sum[:]),
		location,
		timestamp,
	}

	return []byte(strings.Join(lines, "\n"))
}
