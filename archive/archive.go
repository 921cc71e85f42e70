// Package archive turns a located content tree and its metadata into a
// finished Markdown article. It selects between a primary converter and a
// fallback, fills in default metadata and assembles the document header.
package archive

import (
	"strings"

	"github.com/fwojciec/mdarchive"
)

// Engine names recorded on archived articles when the Archiver is not
// given names of its own.
const (
	EnginePrimary  = "primary"
	EngineFallback = "fallback"
)

// Archiver converts content trees into articles.
//
// Primary is used when it is set and available. A converter is available
// when its Probe reports true, or, for converters that cannot be probed,
// when it converts a trivial tree without error. Otherwise, and when the
// primary fails on the actual content, Fallback is used.
//
// PrimaryEngine and FallbackEngine name the converters on the articles they
// produce; empty names default to EnginePrimary and EngineFallback.
type Archiver struct {
	Primary  mdarchive.Converter
	Fallback mdarchive.Converter

	PrimaryEngine  string
	FallbackEngine string
}

// Archive converts content and assembles it with meta into an article.
// Returns ENOTFOUND when content is nil or empty, or when no converter
// produced a body.
func (a *Archiver) Archive(content *mdarchive.Node, meta mdarchive.Metadata) (*mdarchive.Article, error) {
	if content.IsEmpty() {
		return nil, mdarchive.Errorf(mdarchive.ENOTFOUND, "content not found")
	}

	body, engine, err := a.convert(content)
	if err != nil {
		return nil, err
	}

	meta = Normalize(meta)
	return &mdarchive.Article{
		Metadata: meta,
		Body:     body,
		Markdown: mdarchive.Assemble(meta, body),
		Engine:   engine,
	}, nil
}

func (a *Archiver) convert(content *mdarchive.Node) (string, string, error) {
	if a.Primary != nil && available(a.Primary) {
		body, err := a.Primary.Convert(content)
		if err == nil {
			return body, engineName(a.PrimaryEngine, EnginePrimary), nil
		}
		if a.Fallback == nil || mdarchive.ErrorCode(err) == mdarchive.ENOTFOUND {
			return "", "", err
		}
	}
	if a.Fallback == nil {
		return "", "", mdarchive.Errorf(mdarchive.EINTERNAL, "no converter available")
	}
	body, err := a.Fallback.Convert(content)
	if err != nil {
		return "", "", err
	}
	return body, engineName(a.FallbackEngine, EngineFallback), nil
}

func engineName(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

func available(c mdarchive.Converter) bool {
	if p, ok := c.(mdarchive.Prober); ok {
		return p.Probe()
	}
	_, err := c.Convert(mdarchive.NewElement("p", nil, mdarchive.NewText("test")))
	return err == nil
}

// Normalize applies default title and author and reduces the date to its
// YYYY-MM-DD part, or to "" when none is present.
func Normalize(meta mdarchive.Metadata) mdarchive.Metadata {
	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Title == "" {
		meta.Title = mdarchive.DefaultTitle
	}
	meta.Author = strings.TrimSpace(meta.Author)
	if meta.Author == "" {
		meta.Author = mdarchive.DefaultAuthor
	}
	meta.Date = mdarchive.ExtractDate(meta.Date)
	return meta
}
