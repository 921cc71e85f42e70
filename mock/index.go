package mock

import (
	"context"

	"github.com/fwojciec/mdarchive"
)

var _ mdarchive.ArticleIndex = (*ArticleIndex)(nil)

// ArticleIndex is a mock implementation of mdarchive.ArticleIndex.
type ArticleIndex struct {
	RecordArticleFn func(ctx context.Context, article *mdarchive.Article, filename string) (*mdarchive.IndexEntry, error)
	FindEntriesFn   func(ctx context.Context, filter mdarchive.IndexFilter) ([]*mdarchive.IndexEntry, error)
}

func (i *ArticleIndex) RecordArticle(ctx context.Context, article *mdarchive.Article, filename string) (*mdarchive.IndexEntry, error) {
	return i.RecordArticleFn(ctx, article, filename)
}

func (i *ArticleIndex) FindEntries(ctx context.Context, filter mdarchive.IndexFilter) ([]*mdarchive.IndexEntry, error) {
	return i.FindEntriesFn(ctx, filter)
}
