package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/book"
	"github.com/bookbind/bookbind/fs"
	"github.com/bookbind/bookbind/goquery"
	"github.com/bookbind/bookbind/htmltomarkdown"
	bookhttp "github.com/bookbind/bookbind/http"
	"github.com/bookbind/bookbind/rod"
	bookslog "github.com/bookbind/bookbind/slog"
	"github.com/bookbind/bookbind/sqlite"
	"github.com/bookbind/bookbind/trafilatura"
)

// manifestFileName is the manifest database, kept inside the output
// directory next to the caches.
const manifestFileName = "manifest.db"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the conversion manifest.
	DB *sqlite.DB

	// Fetcher used for pages; held so it can be closed after the run.
	Fetcher bookbind.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		if err := m.Fetcher.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookbind"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookbind --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire command-specific dependencies. The "new" command only writes a
	// template and needs nothing beyond the parsed CLI.
	switch cmd {
	case "build":
		cfg, err := fs.LoadConfig(cli.Build.Input)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Build.Input, err)
		}
		deps.Config = cfg

		if err := m.wireBuild(cli, cfg, deps, stderr); err != nil {
			return err
		}
		defer m.Close()

	case "status":
		cfg, err := fs.LoadConfig(cli.Status.Input)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Status.Input, err)
		}
		deps.Config = cfg

		m.DB = sqlite.NewDB(filepath.Join(cfg.OutputDir, manifestFileName))
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: run 'bookbind build' first to create the manifest")
			return fmt.Errorf("failed to open manifest: %w", err)
		}
		defer m.Close()
		deps.Manifest = sqlite.NewManifestService(m.DB)
	}

	return kongCtx.Run(deps)
}

// wireBuild assembles the conversion pipeline for the build command.
func (m *Main) wireBuild(cli *CLI, cfg *bookbind.Config, deps *Dependencies, stderr io.Writer) error {
	// Images always go over plain HTTP; only pages may need a browser.
	httpFetcher := bookhttp.NewFetcher()

	pageFetcher := bookbind.Fetcher(httpFetcher)
	if cli.Build.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		pageFetcher = browser
	}
	m.Fetcher = pageFetcher

	imageFetcher := bookbind.Fetcher(httpFetcher)
	if cli.Build.RPS > 0 {
		pageFetcher = bookhttp.NewRateLimitedFetcher(pageFetcher, cli.Build.RPS)
		imageFetcher = bookhttp.NewRateLimitedFetcher(httpFetcher, cli.Build.RPS)
	}

	var registryOpts []goquery.RegistryOption
	if cfg.Fallback == bookbind.FallbackAuto {
		registryOpts = append(registryOpts, goquery.WithFallbackExtractor(trafilatura.NewExtractor()))
	}
	if cfg.OutputFormat() == bookbind.FormatMarkdown {
		registryOpts = append(registryOpts,
			goquery.WithTransformer(htmltomarkdown.NewTransformer()),
			goquery.WithRenderer(htmltomarkdown.NewRenderer()),
		)
	}

	images := fs.NewImageStore(cfg.OutputDir, imageFetcher)
	cache := fs.NewPageCache(cfg.OutputDir, pageFetcher)
	registry := bookslog.NewLoggingRegistry(goquery.NewRegistry(images, deps.Logger, registryOpts...), deps.Logger)
	writer := fs.NewBookWriter(cfg.OutputDir, cfg.OutputFormat())

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	m.DB = sqlite.NewDB(filepath.Join(cfg.OutputDir, manifestFileName))
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}

	deps.Builder = book.NewBuilder(cache, registry, writer, deps.Logger,
		book.WithManifest(sqlite.NewManifestService(m.DB)))
	return nil
}
