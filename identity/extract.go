package identity

import (
	"bytes"

	"golang.org/x/net/html"
)

// rawFields accumulates metadata values during the single extraction pass
// over the document markup. A later occurrence of the same key overwrites
// an earlier one. An empty string means the field was not seen.
type rawFields struct {
	publicKey     string
	displayName   string
	author        string
	ogAuthor      string
	ogTitle       string
	avatar        string
	ogImage       string
	favicon       string
	description   string
	ogDescription string
}

// extract folds the document's meta and link tags into a rawFields
// record in a single streaming traversal. Malformed markup never fails:
// the tokenizer yields whatever tags it can recognize and the rest is
// skipped.
func extract(content []byte) rawFields {
	var raw rawFields

	z := html.NewTokenizer(bytes.NewReader(content))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return raw
		}

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		if !hasAttr {
			continue
		}

		switch string(name) {
		case "meta":
			raw.meta(tagAttrs(z))
		case "link":
			raw.link(tagAttrs(z))
		}
	}
}

// tagAttrs drains the current tag's attributes into a map.
func tagAttrs(z *html.Tokenizer) map[string]string {
	attrs := make(map[string]string)

	for {
		key, val, more := z.TagAttr()
		attrs[string(key)] = string(val)

		if !more {
			return attrs
		}
	}
}

// meta records a metadata tag value. The property attribute takes
// precedence over name, since OpenGraph tags use property.
//
// The bare "description" key shares a slot with identity:description:
// whichever the traversal sees last wins.
func (f *rawFields) meta(attrs map[string]string) {
	content, ok := attrs["content"]
	if !ok {
		return
	}

	key, ok := attrs["property"]
	if !ok {
		key, ok = attrs["name"]
	}

	if !ok {
		return
	}

	switch key {
	case "identity:public-key":
		f.publicKey = content
	case "identity:display-name":
		f.displayName = content
	case "identity:avatar":
		f.avatar = content
	case "identity:description", "description":
		f.description = content
	case "author":
		f.author = content
	case "og:author":
		f.ogAuthor = content
	case "og:title":
		f.ogTitle = content
	case "og:image":
		f.ogImage = content
	case "og:description":
		f.ogDescription = content
	}
}

// link records a favicon candidate from link tags with rel "icon" or
// "shortcut icon".
func (f *rawFields) link(attrs map[string]string) {
	rel := attrs["rel"]
	if rel != "icon" && rel != "shortcut icon" {
		return
	}

	if href, ok := attrs["href"]; ok {
		f.favicon = href
	}
}
