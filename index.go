package mdarchive

import (
	"context"
	"time"
)

// IndexEntry records one archived article.
type IndexEntry struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Date        string    `json:"date"`
	URL         string    `json:"url"`
	Engine      string    `json:"engine"`
	ContentHash string    `json:"contentHash"`
	ArchivedAt  time.Time `json:"archivedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Filename == "" {
		return Errorf(EINVALID, "index entry filename required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "index entry title required")
	}
	return nil
}

// IndexFilter selects index entries. Nil fields are ignored.
type IndexFilter struct {
	URL *string
	// Body matches entries whose archived body has the same content.
	Body *string

	Limit  int
	Offset int
}

// ArticleIndex keeps a record of archived articles.
type ArticleIndex interface {
	// RecordArticle stores an entry for an article written under filename.
	RecordArticle(ctx context.Context, article *Article, filename string) (*IndexEntry, error)

	// FindEntries returns entries matching the filter, most recent first.
	FindEntries(ctx context.Context, filter IndexFilter) ([]*IndexEntry, error)
}
