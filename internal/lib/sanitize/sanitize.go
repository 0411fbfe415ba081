// Package sanitize filters user supplied article HTML down to a fixed allow-list.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var allowedTags = []string{
	"b", "i", "em", "strong", "a", "p", "ul", "ol", "li", "br",
	"h1", "h2", "h3", "h4", "h5", "h6", "img",
}

// Policy strips every tag, attribute and URL scheme outside the allow-list.
// It is safe for concurrent use once built.
type Policy struct {
	p *bluemonday.Policy
}

func New() *Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(allowedTags...)
	p.AllowAttrs("href", "name", "target").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")

	// data: keeps base64 images pasted straight into the body
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "data")
	p.AllowRelativeURLs(false)

	return &Policy{p: p}
}

func (s *Policy) Sanitize(html string) string {
	return s.p.Sanitize(html)
}
