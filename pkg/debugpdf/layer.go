package debugpdf

import (
	"fmt"
	"math"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/tatekumi/pkg/layout"
)

// drawPage outlines the fragments of one page on a per-page layer
func drawPage(
	pdf *fpdf.Fpdf,
	page layout.PreparedPage,
	baseline float64,
	transform func(x, y float64) (float64, float64),
	cfg Config,
) {
	layer := pdf.AddLayer(fmt.Sprintf("Reading order (Page %d)", page.Number), true)
	pdf.BeginLayer(layer)
	defer pdf.EndLayer()

	pdf.SetFont(cfg.Font.Name, cfg.Font.Style, cfg.Font.Size)
	pdf.SetLineWidth(cfg.LineWidth)

	if page.Skip {
		pdf.SetTextColor(120, 120, 120)
		pdf.Text(10, 10+cfg.Font.Size, fmt.Sprintf("page %d: no body text", page.Number))
		return
	}

	for i, f := range page.Fragments {
		drawFragment(pdf, i+1, f, transform, cfg)
	}

	if !math.IsInf(baseline, 0) {
		drawBaseline(pdf, baseline, transform, cfg)
	}
}

// drawFragment outlines a single fragment and prints its reading-order index
// above its top right corner, where vertical lines start
func drawFragment(pdf *fpdf.Fpdf, index int, f layout.Fragment,
	transform func(x, y float64) (float64, float64), cfg Config) {

	color := cfg.Column1
	if f.Column == layout.Column2 {
		color = cfg.Column2
	}
	x, y := transform(float64(f.X), float64(f.Y))
	x2, y2 := transform(float64(f.X+f.Width), float64(f.Bottom()))

	pdf.SetDrawColor(color.R, color.G, color.B)
	pdf.Rect(x, y, x2-x, y2-y, "D")

	if !cfg.Labels {
		return
	}
	label := strconv.Itoa(index)
	pdf.SetTextColor(color.R, color.G, color.B)
	pdf.Text(x2-pdf.GetStringWidth(label), y-cfg.Font.Size*(1-cfg.Font.AscentRatio), label)
}

// drawBaseline draws the tier boundary as a dashed rule across the page
func drawBaseline(pdf *fpdf.Fpdf, baseline float64,
	transform func(x, y float64) (float64, float64), cfg Config) {

	w, _ := pdf.GetPageSize()
	_, y := transform(0, baseline)
	pdf.SetDrawColor(cfg.Baseline.R, cfg.Baseline.G, cfg.Baseline.B)
	pdf.SetDashPattern([]float64{4, 2}, 0)
	pdf.Line(0, y, w, y)
	pdf.SetDashPattern([]float64{}, 0)
}
