package ndlocr

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gardar/tatekumi/pkg/layout"
)

// JSONLine is one recognized line of the JSON result
type JSONLine struct {
	BoundingBox BoundingBox `json:"boundingBox"`
	Confidence  float64     `json:"confidence"`
	ID          int         `json:"id"`
	IsTextline  string      `json:"isTextline"`
	IsVertical  string      `json:"isVertical"`
	Text        string      `json:"text"`
}

// BoundingBox holds the corners of a line, clockwise from the top left
type BoundingBox [][2]int

// Rect returns the axis-aligned extent of the box. The box must not be empty.
func (b BoundingBox) Rect() (x, y, width, height int) {
	minX, minY := b[0][0], b[0][1]
	maxX, maxY := minX, minY
	for _, p := range b[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	return minX, minY, maxX - minX, maxY - minY
}

// ParseJSON reads a JSON result. Text lines become body fragments, every other
// line gets the NonText type and is ignored by the layout stage. A line without
// a four-corner boundingBox fails the whole result with a *layout.ValidationError.
func ParseJSON(r io.Reader) (layout.Document, error) {
	var book [][]JSONLine
	if err := json.NewDecoder(r).Decode(&book); err != nil {
		return layout.Document{}, fmt.Errorf("failed to parse NDL OCR JSON: %w", err)
	}

	doc := layout.Document{Pages: make([]layout.Page, 0, len(book))}
	for i, lines := range book {
		page := layout.Page{Number: i + 1}
		for j, line := range lines {
			if n := len(line.BoundingBox); n < 4 {
				reason := "missing"
				if n > 0 {
					reason = fmt.Sprintf("%d corners, want 4", n)
				}
				return layout.Document{}, &layout.ValidationError{Page: i + 1, Index: j, Field: "boundingBox", Reason: reason}
			}
			x, y, w, h := line.BoundingBox.Rect()
			typ := NonText
			if line.IsTextline == "true" {
				typ = layout.BodyText
			}
			page.Fragments = append(page.Fragments, layout.Fragment{
				X: x, Y: y, Width: w, Height: h,
				Type: typ,
				Text: line.Text,
			})
		}
		doc.Pages = append(doc.Pages, page)
	}
	Logger.Debug("parsed NDL OCR JSON", "pages", len(doc.Pages))
	return doc, nil
}
