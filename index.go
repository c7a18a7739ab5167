package htmlmerge

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

// ImageIndex maps normalized filename keys to candidate image paths.
// Built once per run, read-only afterwards.
type ImageIndex struct {
	entries map[string][]string
}

// NewImageIndex returns an empty index.
func NewImageIndex() *ImageIndex {
	return &ImageIndex{entries: make(map[string][]string)}
}

// Add registers path under each of its StemKeys.
func (x *ImageIndex) Add(path string) {
	for _, key := range StemKeys(path) {
		x.entries[key] = append(x.entries[key], path)
	}
}

// Lookup pools the candidates registered under any of keys. Each path is
// returned once, in first-seen order.
func (x *ImageIndex) Lookup(keys ...string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, key := range uniqueKeys(keys...) {
		for _, path := range x.entries[key] {
			if seen[path] {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}
	return paths
}

// Len returns the number of distinct keys.
func (x *ImageIndex) Len() int {
	return len(x.entries)
}

// FindIcon returns the best indexed image for text, if any.
func (x *ImageIndex) FindIcon(text string) (string, bool) {
	return BestCandidate(x.Lookup(LookupKeys(Slugify(text))...))
}

// BestCandidate picks the shortest path, breaking ties by case-insensitive
// then exact lexicographic order.
func BestCandidate(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	sorted := append([]string(nil), paths...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la < lb
		}
		if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
			return la < lb
		}
		return a < b
	})
	return sorted[0], true
}

// FileTree provides the inputs of a merge run.
type FileTree interface {
	// HTMLFiles lists markup files, excluding output and its directory.
	HTMLFiles(output string) ([]string, error)

	// ImageIndex indexes image files, skipping the exclude directories.
	ImageIndex(exclude ...string) (*ImageIndex, error)
}

// IconStore materializes icons inside the output directory.
type IconStore interface {
	// Ensure returns the path of a browser-ready copy of the image at path.
	// Vector images are rasterized; the result is cached by content.
	Ensure(ctx context.Context, path string) (string, error)

	// Dir returns the directory holding materialized icons.
	Dir() string
}

// OutputWriter persists the merged document.
type OutputWriter interface {
	Write(path string, data []byte) error
}
