// Package fs provides file-based discovery, caching and output for htmlmerge.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlmerge"
)

// Ensure Tree implements htmlmerge.FileTree at compile time.
var _ htmlmerge.FileTree = (*Tree)(nil)

// Tree walks a directory tree rooted at Root.
type Tree struct {
	Root     string
	SkipDirs map[string]bool
}

// NewTree creates a Tree that prunes htmlmerge.SkipDirs.
func NewTree(root string) *Tree {
	return &Tree{Root: root, SkipDirs: htmlmerge.SkipDirs}
}

// HTMLFiles lists .html and .htm files under the root. The output file and
// its parent directory (unless it is the root) are excluded. Unreadable
// directories are skipped. The result is in walk order.
func (t *Tree) HTMLFiles(output string) ([]string, error) {
	if err := t.checkRoot(); err != nil {
		return nil, err
	}

	out := canonical(output)
	outDir := filepath.Dir(out)

	var files []string
	err := t.walk([]string{outDir}, func(path string) {
		name := strings.ToLower(filepath.Base(path))
		if !strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".htm") {
			return
		}
		if canonical(path) == out {
			return
		}
		files = append(files, path)
	})
	return files, err
}

// ImageIndex indexes .png and .svg files under the root, skipping the
// exclude directories.
func (t *Tree) ImageIndex(exclude ...string) (*htmlmerge.ImageIndex, error) {
	if err := t.checkRoot(); err != nil {
		return nil, err
	}

	excluded := make([]string, 0, len(exclude))
	for _, dir := range exclude {
		excluded = append(excluded, canonical(dir))
	}

	index := htmlmerge.NewImageIndex()
	err := t.walk(excluded, func(path string) {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png", ".svg":
			index.Add(path)
		}
	})
	return index, err
}

func (t *Tree) checkRoot() error {
	info, err := os.Stat(t.Root)
	if err != nil {
		return htmlmerge.Errorf(htmlmerge.ENOTFOUND, "root %q not found", t.Root)
	}
	if !info.IsDir() {
		return htmlmerge.Errorf(htmlmerge.EINVALID, "root %q is not a directory", t.Root)
	}
	return nil
}

// walk calls fn for every non-directory entry, pruning SkipDirs and the
// pruned directories (given in canonical form). The root itself is never
// pruned and is followed when it is a symlink; paths passed to fn stay
// under Root as given.
func (t *Tree) walk(pruned []string, fn func(path string)) error {
	root := canonical(t.Root)
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped; the walk continues.
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if t.SkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			for _, p := range pruned {
				if canonical(path) == p {
					return filepath.SkipDir
				}
			}
			return nil
		}
		fn(t.underRoot(root, path))
		return nil
	})
}

// underRoot rewrites a path found under the canonical root so it is
// rooted at Root again.
func (t *Tree) underRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.Join(t.Root, rel)
}

// canonical returns the absolute, symlink-resolved form of path. When path
// does not exist yet, its nearest existing ancestor is resolved instead.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs
	}
	return filepath.Join(canonical(parent), filepath.Base(abs))
}
