package mock

import (
	"io"

	"github.com/fwojciec/htmlmerge"
)

var _ htmlmerge.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of htmlmerge.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, page *htmlmerge.Page) error
}

func (r *Renderer) Render(w io.Writer, page *htmlmerge.Page) error {
	return r.RenderFn(w, page)
}
