// Package html renders merged pages with html/template.
package html

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/fwojciec/htmlmerge"
)

// Ensure Renderer implements htmlmerge.Renderer at compile time.
var _ htmlmerge.Renderer = (*Renderer)(nil)

//go:embed page.html.tmpl
var pageTemplate string

// Renderer writes a Page as a single self-contained HTML document.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

type pageView struct {
	Title string
	Items []itemView
}

type itemView struct {
	Icon   template.URL
	Text   string
	Source string
}

// Render writes page to w.
func (r *Renderer) Render(w io.Writer, page *htmlmerge.Page) error {
	if page == nil {
		return htmlmerge.Errorf(htmlmerge.EINVALID, "page required")
	}

	view := pageView{
		Title: page.Title,
		Items: make([]itemView, 0, len(page.Items)),
	}
	for _, item := range page.Items {
		// Icons are produced by the resolver: cache paths or the placeholder data URI.
		view.Items = append(view.Items, itemView{
			Icon:   template.URL(item.Icon),
			Text:   item.Text,
			Source: item.Source,
		})
	}

	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
