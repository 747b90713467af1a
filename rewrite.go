package webarchive

import (
	"html"
	"net/url"
	"strings"
)

// urlCandidates returns the textual forms a document may use to reference
// u, most specific first: the canonical absolute URL (query HTML-entity
// encoded, as it appears in archived markup), the scheme-relative form, and
// the host- and sibling-relative forms computed against the main document's
// URL.
func urlCandidates(u, mainURL *url.URL) []string {
	abs := u.Scheme + "://" + u.Host + u.EscapedPath() + encodedQuery(u)
	return []string{
		abs,
		strings.TrimPrefix(abs, u.Scheme+":"),
		strings.TrimPrefix(abs, mainURL.Scheme+"://"+mainURL.Host),
		strings.TrimPrefix(abs, mainURL.Scheme+"://"+mainURL.Host+mainURL.EscapedPath()),
	}
}

// resourceCandidates adds the raw path-and-query form, which only makes
// sense for resources on the main document's own host.
func resourceCandidates(u, mainURL *url.URL) []string {
	cands := urlCandidates(u, mainURL)
	if u.Host == mainURL.Host {
		cands = append(cands, u.RequestURI())
	}
	return cands
}

func encodedQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	return html.EscapeString("?" + u.RawQuery)
}

// rewriteURL replaces every occurrence of the first candidate found in doc
// with repl and reports whether anything matched. Plain substring
// replacement: the document is never parsed as HTML.
func rewriteURL(doc *string, cands []string, repl string) bool {
	for _, c := range cands {
		if c == "" || !strings.Contains(*doc, c) {
			continue
		}
		*doc = strings.ReplaceAll(*doc, c, repl)
		return true
	}
	return false
}

// blankURL removes every candidate form found in doc. Unlike rewriteURL it
// does not stop at the first hit: a dropped resource must not stay
// referenced under any of its forms.
func blankURL(doc *string, cands []string) {
	for _, c := range cands {
		if c == "" || !strings.Contains(*doc, c) {
			continue
		}
		*doc = strings.ReplaceAll(*doc, c, "")
	}
}

var javaScriptMIMETypes = map[string]bool{
	"text/javascript":          true,
	"application/javascript":   true,
	"application/x-javascript": true,
}
