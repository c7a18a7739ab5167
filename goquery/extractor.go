// Package goquery extracts content fragments from HTML using goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmlmerge"
)

// Ensure Extractor implements htmlmerge.Extractor at compile time.
var _ htmlmerge.Extractor = (*Extractor)(nil)

// Fragment patterns, tried in order. Only the first kind that matches
// anywhere in a document is used.
var (
	listItemPattern  = regexp.MustCompile(`(?is)<li\b[^>]*>(.*?)</li>`)
	paragraphPattern = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	headingPattern   = regexp.MustCompile(`(?is)<h[1-3]\b[^>]*>(.*?)</h[1-3]>`)
)

// Extractor finds list items, paragraphs or headings in raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the fragments of the first pattern kind that matches html:
// list items, else paragraphs, else headings (levels 1-3). Heading fragments
// never carry an image. Fragments without text are dropped.
func (e *Extractor) Extract(html string) ([]htmlmerge.Fragment, error) {
	if bodies := submatches(listItemPattern, html); len(bodies) > 0 {
		return fragments(bodies, true)
	}
	if bodies := submatches(paragraphPattern, html); len(bodies) > 0 {
		return fragments(bodies, true)
	}
	return fragments(submatches(headingPattern, html), false)
}

func submatches(re *regexp.Regexp, html string) []string {
	matches := re.FindAllStringSubmatch(html, -1)
	bodies := make([]string, 0, len(matches))
	for _, m := range matches {
		bodies = append(bodies, m[1])
	}
	return bodies
}

func fragments(bodies []string, withImages bool) ([]htmlmerge.Fragment, error) {
	var out []htmlmerge.Fragment
	for _, body := range bodies {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			return nil, htmlmerge.Errorf(htmlmerge.EINVALID, "failed to parse fragment: %v", err)
		}

		text := strings.TrimSpace(doc.Text())
		if text == "" {
			continue
		}

		frag := htmlmerge.Fragment{Text: text}
		if withImages {
			frag.ImageSrc = firstImageSrc(doc)
		}
		out = append(out, frag)
	}
	return out, nil
}

// firstImageSrc returns the trimmed src of the first image with a non-empty src.
func firstImageSrc(doc *goquery.Document) string {
	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v := strings.TrimSpace(sel.AttrOr("src", "")); v != "" {
			src = v
			return false
		}
		return true
	})
	return src
}
