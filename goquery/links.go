package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdarchive"
)

// linkAttrs lists the URL-bearing attributes rewritten by ResolveLinks.
var linkAttrs = []struct {
	Selector string
	Attr     string
}{
	{Selector: "a[href]", Attr: "href"},
	{Selector: "img[src]", Attr: "src"},
}

// ResolveLinks rewrites relative link targets and image sources to absolute
// URLs against baseURL, the way a browser reports them. Fragment-only and
// non-HTTP links (javascript:, mailto:, tel:, data:) are left untouched.
func (d *Document) ResolveLinks(baseURL string) error {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return mdarchive.Errorf(mdarchive.EINVALID, "invalid base URL: %q", baseURL)
	}

	for _, la := range linkAttrs {
		d.doc.Find(la.Selector).Each(func(_ int, sel *goquery.Selection) {
			val, _ := sel.Attr(la.Attr)
			if resolved := resolveURL(base, val); resolved != "" {
				sel.SetAttr(la.Attr, resolved)
			}
		})
	}
	return nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string when the value should be kept as is.
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") || isNonHTTPLink(ref) {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
