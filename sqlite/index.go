package sqlite

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdarchive"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mdarchive.ArticleIndex = (*ArticleIndex)(nil)

// ArticleIndex implements mdarchive.ArticleIndex using SQLite.
type ArticleIndex struct {
	db *DB
}

// NewArticleIndex creates a new ArticleIndex.
func NewArticleIndex(db *DB) *ArticleIndex {
	return &ArticleIndex{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// RecordArticle stores an entry for the article.
func (s *ArticleIndex) RecordArticle(ctx context.Context, article *mdarchive.Article, filename string) (*mdarchive.IndexEntry, error) {
	entry := &mdarchive.IndexEntry{
		ID:          uuid.New().String(),
		Filename:    filename,
		Title:       article.Metadata.Title,
		Author:      article.Metadata.Author,
		Date:        article.Metadata.Date,
		URL:         article.Metadata.URL,
		Engine:      article.Engine,
		ContentHash: hashContent(article.Body),
		ArchivedAt:  time.Now().UTC().Truncate(time.Second),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, filename, title, author, date, url, engine, content_hash, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Filename, entry.Title, entry.Author, entry.Date, entry.URL, entry.Engine,
		entry.ContentHash, entry.ArchivedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// FindEntries retrieves entries matching the filter, most recent first.
func (s *ArticleIndex) FindEntries(ctx context.Context, filter mdarchive.IndexFilter) ([]*mdarchive.IndexEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, filename, title, author, date, url, engine, content_hash, archived_at FROM articles WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Body != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, hashContent(*filter.Body))
	}

	query.WriteString(" ORDER BY archived_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*mdarchive.IndexEntry
	for rows.Next() {
		var e mdarchive.IndexEntry
		var archivedAt string

		if err := rows.Scan(&e.ID, &e.Filename, &e.Title, &e.Author, &e.Date, &e.URL, &e.Engine,
			&e.ContentHash, &archivedAt); err != nil {
			return nil, err
		}

		if e.ArchivedAt, err = parseRFC3339(archivedAt, "archived_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
