package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ mdarchive.ArticleWriter = &fs.Writer{}
}

func TestWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes article under its archive file name", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		meta := mdarchive.Metadata{Title: "A/B: C", Author: "Jane", Date: "2023-01-02", URL: "https://example.com"}
		article := &mdarchive.Article{
			Metadata: meta,
			Body:     "Body.",
			Markdown: mdarchive.Assemble(meta, "Body."),
		}

		name, err := w.WriteArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Equal(t, "(2023-01-02)A_B_ C_Jane.md", name)

		content, err := os.ReadFile(filepath.Join(baseDir, name))
		require.NoError(t, err)
		assert.Equal(t, "# A/B: C\n\n**Author:** Jane\n\n**Date:** 2023-01-02\n\n**Link:** https://example.com\n\nBody.", string(content))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(baseDir)

		name, err := w.WriteArticle(context.Background(), &mdarchive.Article{
			Metadata: mdarchive.Metadata{Title: "T", Author: "A"},
			Markdown: "# T",
		})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(baseDir, name))
		require.NoError(t, err)
	})

	t.Run("replaces an existing file and leaves no temporary files", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)
		article := &mdarchive.Article{
			Metadata: mdarchive.Metadata{Title: "T", Author: "A"},
			Markdown: "first",
		}

		_, err := w.WriteArticle(context.Background(), article)
		require.NoError(t, err)
		article.Markdown = "second"
		name, err := w.WriteArticle(context.Background(), article)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(baseDir, name))
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("validates article", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteArticle(context.Background(), &mdarchive.Article{Markdown: "x"})

		require.Error(t, err)
		assert.Equal(t, mdarchive.EINVALID, mdarchive.ErrorCode(err))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteArticle(ctx, &mdarchive.Article{
			Metadata: mdarchive.Metadata{Title: "T", Author: "A"},
			Markdown: "# T",
		})

		require.ErrorIs(t, err, context.Canceled)
	})
}
