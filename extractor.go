package htmlmerge

// Fragment is a piece of markup content matched by an Extractor.
type Fragment struct {
	// Text is the tag-stripped, entity-decoded, trimmed content. Never empty.
	Text string

	// ImageSrc is the src of the first image in the fragment, if any.
	ImageSrc string
}

// Extractor extracts content fragments from raw HTML.
type Extractor interface {
	// Extract returns the fragments of html in document order.
	// List items take precedence over paragraphs, which take precedence
	// over headings; only one kind is returned per document.
	Extract(html string) ([]Fragment, error)
}
