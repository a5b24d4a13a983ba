package hocr

import (
	"math"
	"strings"

	"golang.org/x/net/html"

	"github.com/gardar/tatekumi/pkg/layout"
)

// ToDocument converts a parsed hOCR document into layout pages.
// Lines with class 'ocr_line' become body text, other line classes keep their
// class name as fragment type. Word texts are joined without separators, as
// vertical Japanese recognizers emit one word per character.
func ToDocument(h HOCR) layout.Document {
	doc := layout.Document{Pages: make([]layout.Page, 0, len(h.Pages))}
	for i, p := range h.Pages {
		page := layout.Page{
			Number: i + 1,
			Width:  round(p.BBox.X2 - p.BBox.X1),
			Height: round(p.BBox.Y2 - p.BBox.Y1),
		}
		for _, line := range p.Lines {
			page.Fragments = append(page.Fragments, toFragment(line))
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}

func toFragment(line Line) layout.Fragment {
	typ := string(line.Class)
	if line.Class == ClassLine {
		typ = layout.BodyText
	}
	return layout.Fragment{
		X:      round(line.BBox.X1),
		Y:      round(line.BBox.Y1),
		Width:  round(line.BBox.X2 - line.BBox.X1),
		Height: round(line.BBox.Y2 - line.BBox.Y1),
		Type:   typ,
		Text:   lineText(line),
	}
}

// lineText returns the concatenated word texts of a line
func lineText(line Line) string {
	if len(line.Words) == 0 {
		return line.Text
	}
	var builder strings.Builder
	for _, word := range line.Words {
		builder.WriteString(word.Text)
	}
	return builder.String()
}

func round(v float64) int { return int(math.Round(v)) }

// extractTextContent gets all text from a node and its children
func extractTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractTextContent(c))
	}
	return strings.TrimSpace(text.String())
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, attrName string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrName {
			return attr.Val
		}
	}
	return ""
}
