package gdocai

import (
	"math"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/tatekumi/pkg/layout"
)

// ToDocument converts a Document AI response into layout pages. Every detected
// line becomes a body-text fragment. A line without usable geometry fails the
// conversion with a *layout.ValidationError.
func ToDocument(doc *documentaipb.Document) (layout.Document, error) {
	runes := []rune(doc.GetText())
	out := layout.Document{Pages: make([]layout.Page, 0, len(doc.GetPages()))}

	for i, p := range doc.GetPages() {
		page := layout.Page{Number: i + 1}
		if dim := p.GetDimension(); dim != nil {
			page.Width = int(math.Round(float64(dim.Width)))
			page.Height = int(math.Round(float64(dim.Height)))
		}
		for j, line := range p.GetLines() {
			x, y, w, h, err := boundingBox(line.GetLayout(), p.GetDimension())
			if err != nil {
				err.Page, err.Index = page.Number, j
				return layout.Document{}, err
			}
			page.Fragments = append(page.Fragments, layout.Fragment{
				X: x, Y: y, Width: w, Height: h,
				Type: layout.BodyText,
				Text: strings.TrimRight(textFromLayout(line.GetLayout(), runes), "\r\n"),
			})
		}
		out.Pages = append(out.Pages, page)
	}
	Logger.Debug("converted Document AI response", "pages", len(out.Pages))
	return out, nil
}

// boundingBox returns the axis-aligned extent of a layout in page pixels.
// Absolute vertices win over normalized ones, which need the page dimension.
func boundingBox(l *documentaipb.Document_Page_Layout, dim *documentaipb.Document_Page_Dimension) (x, y, w, h int, verr *layout.ValidationError) {
	poly := l.GetBoundingPoly()
	var xs, ys []float64
	switch {
	case len(poly.GetVertices()) > 0:
		for _, v := range poly.GetVertices() {
			xs = append(xs, float64(v.X))
			ys = append(ys, float64(v.Y))
		}
	case len(poly.GetNormalizedVertices()) > 0:
		if dim == nil || dim.Width <= 0 || dim.Height <= 0 {
			return 0, 0, 0, 0, &layout.ValidationError{Field: "dimension", Reason: "normalized vertices without page dimension"}
		}
		for _, v := range poly.GetNormalizedVertices() {
			xs = append(xs, float64(v.X*dim.Width))
			ys = append(ys, float64(v.Y*dim.Height))
		}
	default:
		return 0, 0, 0, 0, &layout.ValidationError{Field: "boundingPoly", Reason: "no vertices"}
	}

	minX, maxX := extent(xs)
	minY, maxY := extent(ys)
	return round(minX), round(minY), round(maxX - minX), round(maxY - minY), nil
}

func extent(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi
}

func round(v float64) int { return int(math.Round(v)) }
