// Package trafilatura locates the main content of a page with
// go-trafilatura when no content selector is known.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements mdarchive.Extractor at compile time.
var _ mdarchive.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content and metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content subtree together
// with the title, author, date and canonical URL the page declares.
func (e *Extractor) Extract(rawHTML string) (*mdarchive.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mdarchive.Errorf(mdarchive.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found: %v", err)
	}
	if result.ContentNode == nil {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	content := goquery.FromNode(result.ContentNode)
	if content.IsEmpty() {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	meta := mdarchive.Metadata{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Author: strings.TrimSpace(result.Metadata.Author),
		URL:    result.Metadata.URL,
	}
	if !result.Metadata.Date.IsZero() {
		meta.Date = result.Metadata.Date.Format("2006-01-02")
	}

	return &mdarchive.ExtractResult{
		Content:  content,
		Metadata: meta,
	}, nil
}
