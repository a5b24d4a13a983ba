package gdocai

import (
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

// textFromLayout extracts text from a layout's text anchor segments.
// Segment indexes count characters of the document text, not bytes.
func textFromLayout(layout *documentaipb.Document_Page_Layout, runes []rune) string {
	if layout == nil || layout.TextAnchor == nil {
		return ""
	}
	var result strings.Builder
	total := len(runes)
	for _, seg := range layout.TextAnchor.TextSegments {
		start := min(max(int(seg.StartIndex), 0), total)
		end := min(max(int(seg.EndIndex), start), total)
		result.WriteString(string(runes[start:end]))
	}
	return result.String()
}
