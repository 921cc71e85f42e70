package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *mdarchive.Article
		w := &mock.ArticleWriter{
			WriteArticleFn: func(_ context.Context, article *mdarchive.Article) (string, error) {
				calledWith = article
				return "out.md", nil
			},
		}

		article := &mdarchive.Article{
			Metadata: mdarchive.Metadata{Title: "T", Author: "A"},
			Markdown: "# T",
		}
		name, err := w.WriteArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Equal(t, "out.md", name)
		assert.Same(t, article, calledWith)
	})
}

func TestConverter_Probe(t *testing.T) {
	t.Parallel()

	t.Run("defaults to available", func(t *testing.T) {
		t.Parallel()

		assert.True(t, (&mock.Converter{}).Probe())
	})

	t.Run("delegates to ProbeFn", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{ProbeFn: func() bool { return false }}

		assert.False(t, c.Probe())
	})
}
