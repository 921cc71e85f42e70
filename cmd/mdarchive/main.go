package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/archive"
	"github.com/fwojciec/mdarchive/engine"
	"github.com/fwojciec/mdarchive/fallback"
	"github.com/fwojciec/mdarchive/fs"
	"github.com/fwojciec/mdarchive/goldmark"
	"github.com/fwojciec/mdarchive/htmltomarkdown"
	"github.com/fwojciec/mdarchive/readability"
	mdslog "github.com/fwojciec/mdarchive/slog"
	"github.com/fwojciec/mdarchive/sqlite"
	"github.com/fwojciec/mdarchive/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdarchive"),
		kong.Description("Archive saved HTML articles as Markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no files specified")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.SkipDuplicates && cli.Index == "" {
		return fmt.Errorf("--skip-duplicates requires --index")
	}

	handler := slog.DiscardHandler
	if cli.Verbose {
		handler = slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: mdslog.NewLoggingExtractor(newExtractor(cli.Extractor), logger),
		Archiver: &archive.Archiver{
			Primary:        primaryConverter(cli.Engine, logger),
			Fallback:       mdslog.NewLoggingConverter(fallback.NewConverter(), EngineFallback, logger),
			PrimaryEngine:  cli.Engine,
			FallbackEngine: EngineFallback,
		},
		Writer:    mdslog.NewLoggingWriter(fs.NewWriter(cli.Out), logger),
		Inspector: goldmark.NewInspector(),
	}

	if cli.Index != "" {
		db := sqlite.NewDB(cli.Index)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open index at %q: %w", cli.Index, err)
		}
		defer db.Close()
		deps.Index = sqlite.NewArticleIndex(db)
	}

	cmd := &ArchiveCmd{
		Files:          cli.Files,
		Selector:       cli.Selector,
		TitleSelector:  cli.TitleSelector,
		AuthorSelector: cli.AuthorSelector,
		DateSelector:   cli.DateSelector,
		Title:          cli.Title,
		Author:         cli.Author,
		Date:           cli.Date,
		URL:            cli.URL,
		Stdout:         cli.Stdout,
		Stats:          cli.Stats,
		SkipDuplicates: cli.SkipDuplicates,
		Concurrency:    cli.Concurrency,
	}

	return cmd.Run(deps)
}

// Engine names accepted by --engine.
const (
	EngineRules      = "rules"
	EngineCommonMark = "commonmark"
	EngineFallback   = "fallback"
)

// primaryConverter returns the converter selected by --engine, or nil when
// only the fallback should run.
func primaryConverter(name string, logger *slog.Logger) mdarchive.Converter {
	switch name {
	case EngineCommonMark:
		return mdslog.NewLoggingConverter(htmltomarkdown.NewConverter(), EngineCommonMark, logger)
	case EngineFallback:
		return nil
	default:
		return mdslog.NewLoggingConverter(engine.NewConverter(), EngineRules, logger)
	}
}

// newExtractor returns the main content detector selected by --extractor.
func newExtractor(name string) mdarchive.Extractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}
