package mock

import (
	"context"

	"github.com/fwojciec/htmlmerge"
)

var _ htmlmerge.IconStore = (*IconStore)(nil)

// IconStore is a mock implementation of htmlmerge.IconStore.
type IconStore struct {
	EnsureFn func(ctx context.Context, path string) (string, error)
	DirFn    func() string
}

func (s *IconStore) Ensure(ctx context.Context, path string) (string, error) {
	return s.EnsureFn(ctx, path)
}

func (s *IconStore) Dir() string {
	return s.DirFn()
}
