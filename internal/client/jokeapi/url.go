// Package jokeapi knows the wire format of the joke API: how request URLs are
// composed and how response documents are decoded. It performs no I/O.
package jokeapi

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"golang.org/x/text/unicode/norm"
)

// CategoriesURL returns the endpoint listing joke categories.
func CategoriesURL(root string) string {
	return root + "/categories?format=json"
}

// FlagsURL returns the endpoint listing content flags.
func FlagsURL(root string) string {
	return root + "/flags?format=json"
}

// BuildURL composes the joke request URL.
//
// category is inserted verbatim ("Any" or a comma-joined list), as is flags.
// keywords are free text: they are NFC-normalised and escaped as a query
// component with spaces as %20.
func BuildURL(root, category, flags, keywords string) string {
	var b strings.Builder
	b.WriteString(root)
	b.WriteString("/joke/")
	b.WriteString(category)
	b.WriteString("?format=json")

	if flags != "" {
		b.WriteString("&blacklistFlags=")
		b.WriteString(flags)
	}
	if keywords != "" {
		b.WriteString("&contains=")
		b.WriteString(escapeDataString(keywords))
	}
	return b.String()
}

// BuildTarget is BuildURL over a Selectors value.
func BuildTarget(root string, s models.Selectors) string {
	return BuildURL(root, s.Category, s.Flags, s.Keywords)
}

// escapeDataString leaves only RFC 3986 unreserved characters unescaped.
// url.QueryEscape already escapes a literal '+', so the swap is safe.
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(norm.NFC.String(s)), "+", "%20")
}
