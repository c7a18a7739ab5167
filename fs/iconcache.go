package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlmerge"
)

// Ensure IconCache implements htmlmerge.IconStore at compile time.
var _ htmlmerge.IconStore = (*IconCache)(nil)

// rasterExts are image types browsers display as-is.
var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// IconCache materializes icons in a directory, named by content hash.
// Vector images are rasterized to Size pixels square; raster images are
// copied unchanged. Existing entries are reused.
type IconCache struct {
	dir        string
	size       int
	rasterizer htmlmerge.Rasterizer
}

// NewIconCache creates an IconCache in dir. A nil rasterizer makes every
// vector image fail with EINVALID.
func NewIconCache(dir string, size int, rasterizer htmlmerge.Rasterizer) *IconCache {
	return &IconCache{dir: dir, size: size, rasterizer: rasterizer}
}

// Dir returns the cache directory.
func (c *IconCache) Dir() string {
	return c.dir
}

// Ensure returns the cached copy of the image at path, creating it if needed.
func (c *IconCache) Ensure(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	stem := htmlmerge.SafeStem(path)

	switch {
	case ext == ".svg":
		dst := filepath.Join(c.dir, fmt.Sprintf("%s-%s-%dpx.png", stem, ContentHash(path), c.size))
		if isFile(dst) {
			return dst, nil
		}
		if c.rasterizer == nil {
			return "", htmlmerge.Errorf(htmlmerge.EINVALID, "no rasterizer available for %s", path)
		}
		err := c.create(dst, func(tmp string) error {
			return c.rasterizer.Rasterize(ctx, path, tmp, c.size)
		})
		if err != nil {
			return "", err
		}
		return dst, nil

	case rasterExts[ext]:
		dst := filepath.Join(c.dir, fmt.Sprintf("%s-%s%s", stem, ContentHash(path), ext))
		if isFile(dst) {
			return dst, nil
		}
		err := c.create(dst, func(tmp string) error {
			return copyFile(path, tmp)
		})
		if err != nil {
			return "", err
		}
		return dst, nil
	}

	return "", htmlmerge.Errorf(htmlmerge.EINVALID, "unsupported image type %q", ext)
}

// create runs fill against a temporary file next to dst, then renames it
// into place so a failed fill never leaves a partial cache entry.
func (c *IconCache) create(dst string, fill func(tmp string) error) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create icon directory: %w", err)
	}

	tmp := dst + ".tmp"
	if err := fill(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to store icon %s: %w", dst, err)
	}
	return nil
}

// IsRaster reports whether path has an image extension browsers render directly.
func IsRaster(path string) bool {
	return rasterExts[strings.ToLower(filepath.Ext(path))]
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
