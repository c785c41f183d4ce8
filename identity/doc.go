// Package identity resolves locations and parses identity documents for
// the WebIdentity protocol.
//
// A WebIdentity identity is a web page under the owner's control that
// carries an Ed25519 public key and profile metadata in its meta tags.
// This package turns a free-form location string into the document URL
// (ResolveLocation), parses fetched document content into a normalized
// Identity record (Parse), and renders the publishing-side document from
// a Profile (Profile.WriteDocument).
//
// Fetching the document over the network is deliberately left to the
// caller; Parse accepts already-fetched content.
//
// # Resolving and Parsing
//
//	u, err := identity.ResolveLocation("example.com/alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// content is the fetched document body.
//	ident, err := identity.Parse(u, content)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ident.DisplayName, ident.ID)
//
// # Publishing
//
//	profile := identity.NewProfile(pub)
//	profile.DisplayName = "Alice"
//
//	err := profile.WriteDocument(os.Stdout)
package identity
