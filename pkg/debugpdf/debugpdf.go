// Package debugpdf draws the reading order the layout stage derived, so that
// tuning the indent and empty-line rates can be checked by eye.
//
// Every prepared page becomes one PDF page in source coordinates scaled to fit
// A4. Each body fragment is outlined in the color of its column and labeled
// with its position in reading order, and the column baseline is drawn as a
// dashed rule. Outlines and labels live on optional content layers, so they can
// be toggled in compatible PDF readers.
//
// Main Functions:
//
// - Render: prepared pages to PDF bytes
package debugpdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/tatekumi/internal/logger"
	"github.com/gardar/tatekumi/pkg/layout"
)

var Logger = logger.GetLogger("debugpdf")

// Render builds the debug PDF for pages prepared with the given baseline
func Render(pages []layout.PreparedPage, baseline float64, cfg Config) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to render")
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("tatekumi", true)

	for _, page := range pages {
		srcW, srcH := pageSize(page)
		w, h := fitPage(srcW, srcH, cfg.MaxSide)
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		transform := func(x, y float64) (float64, float64) {
			return normalizeCoords(x, y, srcW, srcH, w, h)
		}
		drawPage(pdf, page, baseline, transform, cfg)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	Logger.Debug("rendered debug PDF", "pages", len(pages), "bytes", buf.Len())
	return buf.Bytes(), nil
}
