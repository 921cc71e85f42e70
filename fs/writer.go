// Package fs provides file-based storage for archived articles.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdarchive"
)

// Ensure Writer implements mdarchive.ArticleWriter at compile time.
var _ mdarchive.ArticleWriter = (*Writer)(nil)

// Writer writes articles as Markdown files to a directory. File names
// follow mdarchive.Filename; an existing file of the same name is replaced.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes the article's Markdown and returns the file name.
// The file is written to a temporary name first and renamed into place,
// so readers never observe a partial file.
func (w *Writer) WriteArticle(ctx context.Context, article *mdarchive.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := mdarchive.Filename(article.Metadata)
	if name == ".md" || name == "" {
		return "", mdarchive.Errorf(mdarchive.EINVALID, "article file name is empty")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.baseDir, ".mdarchive-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(article.Markdown); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(w.baseDir, name)); err != nil {
		return "", err
	}
	return name, nil
}
