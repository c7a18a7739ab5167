package htmlmerge

import "io"

// Renderer writes a merged page as a self-contained document.
type Renderer interface {
	Render(w io.Writer, page *Page) error
}
