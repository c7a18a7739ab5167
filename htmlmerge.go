// Package htmlmerge collects list-like content from a tree of HTML files
// and merges it into a single page, pairing every entry with an icon found
// nearby in the tree.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, oksvg/, fs/).
package htmlmerge

// PlaceholderDataURI is a 1x1 transparent PNG used when no icon resolves.
const PlaceholderDataURI = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="

// PlaceholderText is displayed for items whose text ends up empty.
const PlaceholderText = "(untitled)"

// Defaults used when the CLI is run without flags.
const (
	DefaultTitle    = "Merged List"
	DefaultOutput   = "html/merged.html"
	DefaultIconSize = 24
	IconsDirName    = "icons"
)

// SkipDirs lists directory names never descended into.
var SkipDirs = map[string]bool{
	".git":         true,
	".github":      true,
	".idea":        true,
	".vscode":      true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"target":       true,
	"bin":          true,
	"obj":          true,
	"__pycache__":  true,
}

// Item is a single merged entry.
type Item struct {
	// Text is the display text. Never empty.
	Text string

	// Icon is a slash-separated path relative to the output directory,
	// or PlaceholderDataURI.
	Icon string

	// Source is the originating file, relative to the tree root.
	Source string
}

// NewItem returns an Item, substituting placeholders for empty fields.
func NewItem(text, icon, source string) *Item {
	if text == "" {
		text = PlaceholderText
	}
	if icon == "" {
		icon = PlaceholderDataURI
	}
	return &Item{Text: text, Icon: icon, Source: source}
}

// Page is the merged document handed to a Renderer.
type Page struct {
	Title string
	Items []*Item
}
