package main

import (
	"context"
	"io"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/archive"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor mdarchive.Extractor
	Archiver  *archive.Archiver
	Writer    mdarchive.ArticleWriter
	Inspector mdarchive.Inspector

	// Index is nil unless --index is set.
	Index mdarchive.ArticleIndex
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Selector       string `short:"s" help:"CSS selector of the content root (default: detect main content)"`
	TitleSelector  string `name:"title-selector" help:"CSS selector of the title element (default: <title>)"`
	AuthorSelector string `name:"author-selector" help:"CSS selector of the author element"`
	DateSelector   string `name:"date-selector" help:"CSS selector of the publication date element"`
	Title          string `help:"Article title (overrides the page)"`
	Author         string `help:"Article author (overrides the page)"`
	Date           string `help:"Publication date, YYYY-MM-DD (overrides the page)"`
	URL            string `name:"url" help:"Original page URL, also used to resolve relative links"`
	Engine         string `default:"rules" enum:"rules,commonmark,fallback" env:"MDARCHIVE_ENGINE" help:"Conversion engine (rules, commonmark, fallback)"`
	Extractor      string `default:"trafilatura" enum:"trafilatura,readability" env:"MDARCHIVE_EXTRACTOR" help:"Main content detector used without --selector (trafilatura, readability)"`
	Index          string `env:"MDARCHIVE_INDEX" help:"SQLite database recording archived articles"`
	SkipDuplicates bool   `name:"skip-duplicates" help:"Skip articles whose body is already in the index"`
	Out            string `short:"o" default:"." env:"MDARCHIVE_OUT" help:"Output directory"`
	Concurrency    int    `short:"c" default:"4" env:"MDARCHIVE_CONCURRENCY" help:"Files converted in parallel"`
	Stdout         bool   `help:"Print Markdown to stdout instead of writing files"`
	Stats          bool   `help:"Print the structure of each converted document"`
	Verbose        bool   `short:"v" help:"Log conversion details to stderr"`

	Files []string `arg:"" name:"file" help:"Saved HTML files to archive"`
}

// ArchiveCmd archives a set of saved HTML files.
type ArchiveCmd struct {
	Files          []string
	Selector       string
	TitleSelector  string
	AuthorSelector string
	DateSelector   string
	Title          string
	Author         string
	Date           string
	URL            string
	Stdout         bool
	Stats          bool
	SkipDuplicates bool
	Concurrency    int
}
