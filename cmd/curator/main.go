package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"curator"
	"curator/build"
	curetree "curator/etree"
	"curator/fs"
	"curator/goldmark"
	curgoquery "curator/goquery"
	curhttp "curator/http"
	curimaging "curator/imaging"
	curslog "curator/slog"
	"curator/tldr"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error codes to process exit codes: missing configuration,
// missing required files, and invalid targets exit 2, everything else 1.
func exitCode(err error) int {
	switch curator.ErrorCode(err) {
	case curator.ECONFIG, curator.ENOTFOUND, curator.EINVALID:
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct {
	// Configuration resolved from the environment. Set before calling Run().
	Config curator.Config
}

// NewMain returns a new instance of Main configured from the environment.
// A .env file in the working directory is honored when present.
func NewMain() *Main {
	_ = godotenv.Load()

	return &Main{Config: configFromEnv()}
}

func configFromEnv() curator.Config {
	cfg := curator.Config{
		LibraryDir: os.Getenv("CURATOR_LIBRARY"),
		SiteName:   os.Getenv("CURATOR_SITE_NAME"),
		BaseURL:    os.Getenv("CURATOR_BASE_URL"),
	}
	if cfg.SiteName == "" {
		cfg.SiteName = curator.DefaultSiteName
	}
	return cfg
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := m.Config.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", curator.ErrorMessage(err))
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	library := fs.NewLibrary(m.Config.LibraryDir)
	binder := curgoquery.NewBinder(m.Config.SiteName)
	minifier := curslog.NewLoggingMinifier(curhttp.NewMinifier(), logger)

	builder := &build.Builder{
		Config:     m.Config,
		Library:    library,
		Loader:     goldmark.NewLoader(),
		Text:       curgoquery.NewTextExtractor(),
		Summarizer: tldr.NewSummarizer(),
		Minifier:   minifier,
		Images:     curimaging.NewProcessor(),
		Pages:      binder,
		Index:      binder,
		Features:   binder,
		Sitemap:    curetree.NewSitemapWriter(),
		Logger:     logger,
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Config:   m.Config,
		Library:  library,
		Minifier: minifier,
		Builder:  builder,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("curator"),
		kong.Description("Manage a static-site content library."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'curator --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
