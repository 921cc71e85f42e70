// Package readability locates the main content of a page with
// go-readability. It is an alternative to the trafilatura extractor that
// keeps more of the original markup.
package readability

import (
	"strings"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mdarchive.Extractor at compile time.
var _ mdarchive.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with the page
// title and byline.
func (e *Extractor) Extract(rawHTML string) (*mdarchive.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mdarchive.Errorf(mdarchive.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found: %v", err)
	}

	content, err := goquery.Parse(article.Content)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	return &mdarchive.ExtractResult{
		Content: content,
		Metadata: mdarchive.Metadata{
			Title:  strings.TrimSpace(article.Title),
			Author: strings.TrimSpace(article.Byline),
		},
	}, nil
}
