package htmlmerge

import "fmt"

// Console messages for the outcomes of a run.
const (
	NoFilesMessage = "No HTML files found."
	NoItemsMessage = "No items could be extracted from the HTML files."
)

// FormatSummary returns the one-line console summary of a run. When no
// files or no items were found, the corresponding notice is returned.
func FormatSummary(output string, files, items int) string {
	switch {
	case files == 0:
		return NoFilesMessage
	case items == 0:
		return NoItemsMessage
	}
	return fmt.Sprintf("Wrote %s with %d items from %d HTML files.", output, items, files)
}
