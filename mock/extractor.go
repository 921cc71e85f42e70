package mock

import "github.com/fwojciec/mdarchive"

var _ mdarchive.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdarchive.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mdarchive.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mdarchive.ExtractResult, error) {
	return e.ExtractFn(html)
}
