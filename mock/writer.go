package mock

import (
	"context"

	"github.com/fwojciec/mdarchive"
)

var _ mdarchive.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of mdarchive.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *mdarchive.Article) (string, error)
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *mdarchive.Article) (string, error) {
	return w.WriteArticleFn(ctx, article)
}
