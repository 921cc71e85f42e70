package mdarchive

import (
	"context"
	"regexp"
	"strings"
)

// Default metadata values used when a page does not declare them.
const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Unknown"
)

// Metadata describes the archived page.
type Metadata struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Date   string `json:"date"` // YYYY-MM-DD or empty
	URL    string `json:"url"`
}

// Article is a converted page ready to be persisted.
type Article struct {
	Metadata Metadata `json:"metadata"`
	Body     string   `json:"body"`
	Markdown string   `json:"markdown"`
	Engine   string   `json:"engine"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Metadata.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Markdown == "" {
		return Errorf(EINVALID, "article markdown required")
	}
	if a.Metadata.Date != "" && ExtractDate(a.Metadata.Date) != a.Metadata.Date {
		return Errorf(EINVALID, "article date %q must be YYYY-MM-DD", a.Metadata.Date)
	}
	return nil
}

// ArticleWriter persists archived articles.
type ArticleWriter interface {
	// WriteArticle stores the article and returns the name it was stored under.
	WriteArticle(ctx context.Context, article *Article) (string, error)
}

// Assemble prepends the title/author/date/link header to a Markdown body.
// Metadata fields are written as given, without escaping.
func Assemble(meta Metadata, body string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(meta.Title)
	b.WriteString("\n\n**Author:** ")
	b.WriteString(meta.Author)
	b.WriteString("\n\n")
	if meta.Date != "" {
		b.WriteString("**Date:** ")
		b.WriteString(meta.Date)
		b.WriteString("\n\n")
	}
	b.WriteString("**Link:** ")
	b.WriteString(meta.URL)
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}

var filenameReplacer = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// SanitizeFilename replaces characters that are invalid in file names with
// underscores and trims surrounding whitespace.
func SanitizeFilename(s string) string {
	return strings.TrimSpace(filenameReplacer.Replace(s))
}

// Filename returns the archive file name for the metadata:
// "(<date>)<title>_<author>.md", or "<title>_<author>.md" without a date.
func Filename(meta Metadata) string {
	name := meta.Title + "_" + meta.Author + ".md"
	if meta.Date != "" {
		name = "(" + meta.Date + ")" + name
	}
	return SanitizeFilename(name)
}

var dateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate returns the first YYYY-MM-DD substring of s, or "".
func ExtractDate(s string) string {
	return dateRe.FindString(s)
}
