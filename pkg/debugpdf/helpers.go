package debugpdf

import "github.com/gardar/tatekumi/pkg/layout"

// normalizeCoords rescales source coordinates to PDF coordinates
func normalizeCoords(x, y, srcW, srcH, pdfW, pdfH float64) (float64, float64) {
	nx := (x / srcW) * pdfW
	ny := (y / srcH) * pdfH
	return nx, ny
}

// pageSize returns the source page size, falling back to the extent of the
// fragments when the OCR result does not record it
func pageSize(page layout.PreparedPage) (float64, float64) {
	w, h := float64(page.Width), float64(page.Height)
	for _, f := range page.Fragments {
		w = max(w, float64(f.X+f.Width))
		h = max(h, float64(f.Bottom()))
	}
	if w <= 0 || h <= 0 {
		return 595, 842 // A4
	}
	return w, h
}

// fitPage scales a page so its longest side is maxSide, keeping the aspect ratio
func fitPage(w, h, maxSide float64) (float64, float64) {
	scale := maxSide / max(w, h)
	return w * scale, h * scale
}
