// Package merge orchestrates a merge run: discovery, image indexing,
// extraction with icon matching, rendering and output.
package merge

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/htmlmerge"
)

// Merger merges the HTML files under Root into a single page at Output.
type Merger struct {
	Root   string
	Output string
	Title  string

	Tree      htmlmerge.FileTree
	Extractor htmlmerge.Extractor
	Icons     htmlmerge.IconStore
	Renderer  htmlmerge.Renderer
	Writer    htmlmerge.OutputWriter
	Logger    *slog.Logger
}

// Result holds the outcome of a merge run. No output is written when
// Files or Items is zero.
type Result struct {
	Output string
	Files  int
	Items  int
}

// Run executes the pipeline. Per-file failures are logged and skipped;
// only render and write failures are returned.
func (m *Merger) Run(ctx context.Context) (*Result, error) {
	logger := m.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := m.Tree.HTMLFiles(m.Output)
	if err != nil {
		return nil, fmt.Errorf("discover html files: %w", err)
	}
	result := &Result{Output: m.Output, Files: len(files)}
	if len(files) == 0 {
		return result, nil
	}
	SortPaths(files)

	index, err := m.Tree.ImageIndex(m.Icons.Dir())
	if err != nil {
		return nil, fmt.Errorf("index images: %w", err)
	}

	resolver := &IconResolver{
		Root:      m.Root,
		OutputDir: filepath.Dir(m.Output),
		Index:     index,
		Icons:     m.Icons,
		Logger:    logger,
	}

	var items []*htmlmerge.Item
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frags, err := m.extractFile(file)
		if err != nil {
			logger.Warn("skipping file", "path", file, "err", err)
			continue
		}

		source := m.source(file)
		dir := filepath.Dir(file)
		for _, frag := range frags {
			text := strings.TrimSpace(frag.Text)
			icon := resolver.Resolve(ctx, dir, frag)
			items = append(items, htmlmerge.NewItem(text, icon, source))
		}
	}

	result.Items = len(items)
	if len(items) == 0 {
		return result, nil
	}

	var buf bytes.Buffer
	page := &htmlmerge.Page{Title: m.Title, Items: items}
	if err := m.Renderer.Render(&buf, page); err != nil {
		return nil, err
	}
	if err := m.Writer.Write(m.Output, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return result, nil
}

func (m *Merger) extractFile(path string) ([]htmlmerge.Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return m.Extractor.Extract(strings.ToValidUTF8(string(data), ""))
}

// source returns path relative to Root in slash form.
func (m *Merger) source(path string) string {
	rel, err := relPath(m.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return rel
}

// SortPaths orders paths case-insensitively, breaking ties by exact order.
func SortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := strings.ToLower(paths[i]), strings.ToLower(paths[j])
		if a != b {
			return a < b
		}
		return paths[i] < paths[j]
	})
}
