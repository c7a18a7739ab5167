package merge_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlmerge"
	"github.com/fwojciec/htmlmerge/merge"
	"github.com/fwojciec/htmlmerge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file at root/name.
func touch(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	return path
}

// echoStore records the requested path and returns a cache path for it.
func echoStore(outputDir string, got *string) *mock.IconStore {
	return &mock.IconStore{
		EnsureFn: func(_ context.Context, path string) (string, error) {
			*got = path
			return filepath.Join(outputDir, "icons", filepath.Base(path)+".png"), nil
		},
		DirFn: func() string { return filepath.Join(outputDir, "icons") },
	}
}

func TestIconResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves explicit src against the file directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := filepath.Join(root, "html")
		want := touch(t, root, "docs/a.svg")
		touch(t, root, "a.svg")

		var got string
		r := &merge.IconResolver{Root: root, OutputDir: outDir, Index: htmlmerge.NewImageIndex(), Icons: echoStore(outDir, &got)}

		icon := r.Resolve(context.Background(), filepath.Join(root, "docs"), htmlmerge.Fragment{Text: "Apple", ImageSrc: "a.svg"})

		assert.Equal(t, want, got)
		assert.Equal(t, "icons/a.svg.png", icon)
	})

	t.Run("falls back to the root for relative src", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := filepath.Join(root, "html")
		want := touch(t, root, "img/a.svg")

		var got string
		r := &merge.IconResolver{Root: root, OutputDir: outDir, Index: htmlmerge.NewImageIndex(), Icons: echoStore(outDir, &got)}

		r.Resolve(context.Background(), filepath.Join(root, "docs"), htmlmerge.Fragment{Text: "Apple", ImageSrc: "img/a.svg"})

		assert.Equal(t, want, got)
	})

	t.Run("root-absolute src resolves against the root only", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := filepath.Join(root, "html")
		want := touch(t, root, "img/a.svg")
		touch(t, root, "docs/img/a.svg")

		var got string
		r := &merge.IconResolver{Root: root, OutputDir: outDir, Index: htmlmerge.NewImageIndex(), Icons: echoStore(outDir, &got)}

		r.Resolve(context.Background(), filepath.Join(root, "docs"), htmlmerge.Fragment{Text: "Apple", ImageSrc: "/img/a.svg"})

		assert.Equal(t, want, got)
	})

	t.Run("remote and inline src fall through to fuzzy matching", func(t *testing.T) {
		t.Parallel()

		for _, src := range []string{"https://example.com/a.svg", "HTTP://example.com/a.svg", "//cdn/a.svg", "data:image/png;base64,AAAA"} {
			root := t.TempDir()
			outDir := filepath.Join(root, "html")
			indexed := touch(t, root, "icons/apple.svg")
			index := htmlmerge.NewImageIndex()
			index.Add(indexed)

			var got string
			r := &merge.IconResolver{Root: root, OutputDir: outDir, Index: index, Icons: echoStore(outDir, &got)}

			r.Resolve(context.Background(), root, htmlmerge.Fragment{Text: "Apple", ImageSrc: src})

			assert.Equal(t, indexed, got, src)
		}
	})

	t.Run("missing src falls through to fuzzy matching", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := filepath.Join(root, "html")
		indexed := touch(t, root, "assets/quick-start.png")
		index := htmlmerge.NewImageIndex()
		index.Add(indexed)

		var got string
		r := &merge.IconResolver{Root: root, OutputDir: outDir, Index: index, Icons: echoStore(outDir, &got)}

		r.Resolve(context.Background(), root, htmlmerge.Fragment{Text: "Quick Start", ImageSrc: "missing.svg"})

		assert.Equal(t, indexed, got)
	})

	t.Run("no match yields the placeholder", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		r := &merge.IconResolver{
			Root:      root,
			OutputDir: filepath.Join(root, "html"),
			Index:     htmlmerge.NewImageIndex(),
			Icons: &mock.IconStore{
				EnsureFn: func(context.Context, string) (string, error) {
					t.Fatal("Ensure must not be called")
					return "", nil
				},
			},
		}

		icon := r.Resolve(context.Background(), root, htmlmerge.Fragment{Text: "Hello World"})

		assert.Equal(t, htmlmerge.PlaceholderDataURI, icon)
	})

	t.Run("failed vector icon yields the placeholder", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		touch(t, root, "a.svg")
		r := &merge.IconResolver{
			Root:      root,
			OutputDir: filepath.Join(root, "html"),
			Index:     htmlmerge.NewImageIndex(),
			Icons: &mock.IconStore{
				EnsureFn: func(context.Context, string) (string, error) {
					return "", errors.New("rasterize failed")
				},
			},
		}

		icon := r.Resolve(context.Background(), root, htmlmerge.Fragment{Text: "Apple", ImageSrc: "a.svg"})

		assert.Equal(t, htmlmerge.PlaceholderDataURI, icon)
	})

	t.Run("uncached raster icon references the original file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		touch(t, root, "img/a.png")
		r := &merge.IconResolver{
			Root:      root,
			OutputDir: filepath.Join(root, "html"),
			Index:     htmlmerge.NewImageIndex(),
			Icons: &mock.IconStore{
				EnsureFn: func(context.Context, string) (string, error) {
					return "", errors.New("disk full")
				},
			},
		}

		icon := r.Resolve(context.Background(), root, htmlmerge.Fragment{Text: "Apple", ImageSrc: "img/a.png"})

		assert.Equal(t, "../img/a.png", icon)
	})
}

func writeString(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
