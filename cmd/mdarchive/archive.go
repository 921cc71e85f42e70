package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/goquery"
	"golang.org/x/sync/errgroup"
)

// fileResult is the outcome of archiving one file.
type fileResult struct {
	path    string
	name    string
	article *mdarchive.Article
	// duplicate is the file an identical body was archived under.
	duplicate string
	err       error
}

// Run archives every file, printing one status line per file in input
// order. Files are converted concurrently; saving, duplicate detection and
// indexing then happen one file at a time in input order, so the first of
// several identical files is the one kept. It returns an error if any file
// failed.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]fileResult, len(c.Files))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range c.Files {
		g.Go(func() error {
			results[i] = fileResult{path: path}
			results[i].article, results[i].err = c.archiveFile(deps, path)
			return nil
		})
	}
	_ = g.Wait()

	if !c.Stdout {
		for i := range results {
			if results[i].err == nil {
				c.saveFile(deps.Ctx, deps, &results[i])
			}
		}
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "Error: %s: %s\n", r.path, errorMessage(r.err))
			continue
		}
		if r.duplicate != "" {
			fmt.Fprintf(deps.Stdout, "Skipped: %s (duplicate of %s)\n", r.path, r.duplicate)
			continue
		}
		if c.Stdout {
			fmt.Fprintln(deps.Stdout, r.article.Markdown)
		} else {
			fmt.Fprintf(deps.Stdout, "Saved: %s\n", r.name)
		}
		if c.Stats {
			c.printStats(deps, r)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	return nil
}

// saveFile skips r when its body is already indexed, otherwise writes and
// indexes it.
func (c *ArchiveCmd) saveFile(ctx context.Context, deps *Dependencies, r *fileResult) {
	if c.SkipDuplicates && deps.Index != nil {
		entries, err := deps.Index.FindEntries(ctx, mdarchive.IndexFilter{Body: &r.article.Body, Limit: 1})
		if err != nil {
			r.err = err
			return
		}
		if len(entries) > 0 {
			r.duplicate = entries[0].Filename
			return
		}
	}

	if r.name, r.err = deps.Writer.WriteArticle(ctx, r.article); r.err != nil {
		return
	}
	if deps.Index != nil {
		_, r.err = deps.Index.RecordArticle(ctx, r.article, r.name)
	}
}

// archiveFile reads one saved page and converts it into an article.
func (c *ArchiveCmd) archiveFile(deps *Dependencies, path string) (*mdarchive.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, mdarchive.Errorf(mdarchive.EINVALID, "cannot read file: %v", err)
	}

	doc, err := goquery.NewDocument(string(raw))
	if err != nil {
		return nil, err
	}
	if c.URL != "" {
		if err := doc.ResolveLinks(c.URL); err != nil {
			return nil, err
		}
	}
	doc.Strip()

	var content *mdarchive.Node
	var meta mdarchive.Metadata
	if c.Selector != "" {
		content, err = doc.Select(c.Selector)
		if err != nil {
			return nil, err
		}
		titleSelector := c.TitleSelector
		if titleSelector == "" {
			titleSelector = "title"
		}
		meta.Title = doc.Text(titleSelector)
		meta.Author = doc.Text(c.AuthorSelector)
		meta.Date = doc.Text(c.DateSelector)
	} else {
		stripped, err := doc.HTML()
		if err != nil {
			return nil, mdarchive.Errorf(mdarchive.EINTERNAL, "failed to render HTML: %v", err)
		}
		result, err := deps.Extractor.Extract(stripped)
		if err != nil {
			return nil, err
		}
		content, meta = result.Content, result.Metadata
		if c.TitleSelector != "" {
			meta.Title = doc.Text(c.TitleSelector)
		}
		if c.AuthorSelector != "" {
			meta.Author = doc.Text(c.AuthorSelector)
		}
		if c.DateSelector != "" {
			meta.Date = doc.Text(c.DateSelector)
		}
	}

	c.applyOverrides(&meta)

	return deps.Archiver.Archive(content, meta)
}

func (c *ArchiveCmd) applyOverrides(meta *mdarchive.Metadata) {
	if c.Title != "" {
		meta.Title = c.Title
	}
	if c.Author != "" {
		meta.Author = c.Author
	}
	if c.Date != "" {
		meta.Date = c.Date
	}
	if c.URL != "" {
		meta.URL = c.URL
	}
}

func (c *ArchiveCmd) printStats(deps *Dependencies, r fileResult) {
	s, err := deps.Inspector.Inspect(r.article.Body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s: %s\n", r.path, errorMessage(err))
		return
	}
	fmt.Fprintf(deps.Stdout, "  engine=%s headings=%d links=%d images=%d code=%d tables=%d lists=%d\n",
		r.article.Engine, len(s.Headings), s.Links, s.Images, s.CodeBlocks, s.Tables, s.Lists)
}

// errorMessage returns the message of application errors and the full text
// of anything else.
func errorMessage(err error) string {
	var e *mdarchive.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
