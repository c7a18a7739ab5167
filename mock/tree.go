package mock

import "github.com/fwojciec/htmlmerge"

var _ htmlmerge.FileTree = (*FileTree)(nil)

// FileTree is a mock implementation of htmlmerge.FileTree.
type FileTree struct {
	HTMLFilesFn  func(output string) ([]string, error)
	ImageIndexFn func(exclude ...string) (*htmlmerge.ImageIndex, error)
}

func (t *FileTree) HTMLFiles(output string) ([]string, error) {
	return t.HTMLFilesFn(output)
}

func (t *FileTree) ImageIndex(exclude ...string) (*htmlmerge.ImageIndex, error) {
	return t.ImageIndexFn(exclude...)
}
