package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlmerge"
	"github.com/fwojciec/htmlmerge/fs"
	"github.com/fwojciec/htmlmerge/goquery"
	hmhtml "github.com/fwojciec/htmlmerge/html"
	"github.com/fwojciec/htmlmerge/merge"
	"github.com/fwojciec/htmlmerge/oksvg"
	hmslog "github.com/fwojciec/htmlmerge/slog"
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
		kong.Name("htmlmerge"),
		kong.Description("Merge list content from HTML files into a single page with icons"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.IconSize <= 0 {
		return fmt.Errorf("icon size must be positive, got %d", cli.IconSize)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	output := cli.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(cli.Root, output)
	}

	// Wire dependencies
	var rasterizer htmlmerge.Rasterizer
	if cli.NoRasterize {
		fmt.Fprintln(stderr, "SVG rasterization disabled; SVG icons will use the placeholder")
	} else {
		rasterizer = hmslog.NewLoggingRasterizer(oksvg.NewRasterizer(), logger)
	}

	merger := &merge.Merger{
		Root:      cli.Root,
		Output:    output,
		Title:     cli.Title,
		Tree:      fs.NewTree(cli.Root),
		Extractor: hmslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Icons:     fs.NewIconCache(filepath.Join(filepath.Dir(output), htmlmerge.IconsDirName), cli.IconSize, rasterizer),
		Renderer:  hmhtml.NewRenderer(),
		Writer:    fs.NewWriter(),
		Logger:    logger,
	}

	result, err := merger.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, htmlmerge.FormatSummary(result.Output, result.Files, result.Items))
	return nil
}
