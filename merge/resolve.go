package merge

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlmerge"
	"github.com/fwojciec/htmlmerge/fs"
)

// IconResolver picks an icon for each fragment and materializes it in the
// icon store. It never fails: anything unresolvable becomes the placeholder.
type IconResolver struct {
	Root      string
	OutputDir string
	Index     *htmlmerge.ImageIndex
	Icons     htmlmerge.IconStore
	Logger    *slog.Logger
}

// Resolve returns the icon reference for frag, found in a file under fileDir.
// The result is a slash-separated path relative to OutputDir, or
// htmlmerge.PlaceholderDataURI.
func (r *IconResolver) Resolve(ctx context.Context, fileDir string, frag htmlmerge.Fragment) string {
	var path string
	if frag.ImageSrc != "" {
		path = r.resolveLocal(frag.ImageSrc, fileDir)
	}
	if path == "" && frag.Text != "" && r.Index != nil {
		path, _ = r.Index.FindIcon(frag.Text)
	}
	if path == "" {
		return htmlmerge.PlaceholderDataURI
	}

	icon, err := r.Icons.Ensure(ctx, path)
	if err != nil {
		r.logger().Debug("icon unavailable", "path", path, "err", err)
		if fs.IsRaster(path) {
			// The original image still renders when it cannot be cached.
			return r.relative(path)
		}
		return htmlmerge.PlaceholderDataURI
	}
	return r.relative(icon)
}

// resolveLocal maps an image reference to an existing local file. Remote and
// inline references never resolve. Root-absolute references resolve against
// Root; others against fileDir first, then Root.
func (r *IconResolver) resolveLocal(src, fileDir string) string {
	s := strings.TrimSpace(src)
	lower := strings.ToLower(s)
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}

	var candidates []string
	if strings.HasPrefix(s, "/") {
		candidates = []string{filepath.Join(r.Root, filepath.FromSlash(strings.TrimLeft(s, "/")))}
	} else {
		rel := filepath.FromSlash(s)
		candidates = []string{filepath.Join(fileDir, rel), filepath.Join(r.Root, rel)}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c
		}
	}
	return ""
}

// relative returns path relative to OutputDir in slash form. Paths that
// cannot be made relative fall back to the placeholder.
func (r *IconResolver) relative(path string) string {
	rel, err := relPath(r.OutputDir, path)
	if err != nil {
		return htmlmerge.PlaceholderDataURI
	}
	return rel
}

func (r *IconResolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// relPath returns target relative to base in slash form, using absolute
// paths so mixed relative/absolute inputs compare correctly.
func relPath(base, target string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
