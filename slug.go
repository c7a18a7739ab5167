package htmlmerge

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\x1c-\x1f\x85\p{Z}]+`)
	nonSlugChar   = regexp.MustCompile(`[^a-z0-9\-_.]`)
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
	unsafeNameRun = regexp.MustCompile(`[^A-Za-z0-9_.\-]+`)
)

// Slugify normalizes text into a lookup key: lowercase, whitespace runs
// replaced by "-", and anything outside [a-z0-9-_.] dropped.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimFunc(text, isSpace))
	s = whitespaceRun.ReplaceAllString(s, "-")
	return nonSlugChar.ReplaceAllString(s, "")
}

// isSpace reports whether r is whitespace, counting the ASCII information
// separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// LookupKeys returns the index keys probed for a slug: the slug itself,
// with "-" replaced by "_", with "-" removed, and its first segment.
// Duplicates and empty keys are dropped; order is stable.
func LookupKeys(slug string) []string {
	first := slug
	if i := strings.Index(slug, "-"); i >= 0 {
		first = slug[:i]
	}
	return uniqueKeys(
		slug,
		strings.ReplaceAll(slug, "-", "_"),
		strings.ReplaceAll(slug, "-", ""),
		first,
	)
}

// StemKeys returns the index keys for an image file: its lowercase stem
// and the stem with non-alphanumeric runs collapsed to "-".
func StemKeys(path string) []string {
	stem := strings.ToLower(FileStem(path))
	return uniqueKeys(stem, nonAlnumRun.ReplaceAllString(stem, "-"))
}

// FileStem returns the base name without its final extension. A dotfile
// without a further extension is its own stem.
func FileStem(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// SafeStem returns the stem of path with every run of characters outside
// [A-Za-z0-9_.-] replaced by "-", so it can be used unescaped in a URL path.
// Leading and trailing dots and dashes are trimmed; an empty result is "icon".
func SafeStem(path string) string {
	s := strings.Trim(unsafeNameRun.ReplaceAllString(FileStem(path), "-"), ".-")
	if s == "" {
		return "icon"
	}
	return s
}

func uniqueKeys(keys ...string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
