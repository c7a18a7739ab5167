package mock

import "github.com/fwojciec/htmlmerge"

var _ htmlmerge.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmlmerge.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]htmlmerge.Fragment, error)
}

func (e *Extractor) Extract(html string) ([]htmlmerge.Fragment, error) {
	return e.ExtractFn(html)
}
