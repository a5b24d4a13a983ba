package layout

import (
	"math"
	"slices"
	"unicode/utf8"
)

// PageMetrics holds the page-local thresholds used by line assembly
type PageMetrics struct {
	CharaHeight    float64 // mean rendered height of one character
	EmptyLineWidth float64 // line gap above which a blank line is assumed
}

// Median returns the middle value, or the mean of the two middle values for an
// even count. The input is not modified. It returns NaN for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	half := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[half-1] + sorted[half]) / 2
	}
	return sorted[half]
}

// ColumnBaseline estimates the Y coordinate separating the upper tier from the
// lower one. For each of the first prefix pages it takes the midpoint between the
// smallest and largest Y of all fragments, whatever their type, and returns the
// median of those midpoints. Pages without fragments are passed over; if no page
// yields a midpoint the baseline is +Inf and every fragment lands in Column1.
func ColumnBaseline(pages []Page, prefix int) float64 {
	var midpoints []float64
	for i, page := range pages {
		if i == prefix {
			break
		}
		if len(page.Fragments) == 0 {
			continue
		}
		minY, maxY := page.Fragments[0].Y, page.Fragments[0].Y
		for _, f := range page.Fragments[1:] {
			minY = min(minY, f.Y)
			maxY = max(maxY, f.Y)
		}
		midpoints = append(midpoints, float64(maxY+minY)/2)
	}
	if len(midpoints) == 0 {
		return math.Inf(1)
	}
	return Median(midpoints)
}

// CharaHeight returns the mean of height divided by character count over the
// body fragments of a page. ok is false when the page has no body fragment with
// text, in which case the page carries nothing to read.
func CharaHeight(page Page, bodyType string) (height float64, ok bool) {
	var sum float64
	var n int
	for _, f := range page.Fragments {
		if !isBody(f, bodyType) {
			continue
		}
		sum += float64(f.Height) / float64(utf8.RuneCountInString(f.Text))
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// EmptyLineWidth returns the median width of the body fragments times rate.
// A page without body fragments gets +Inf, so no blank line is ever detected.
func EmptyLineWidth(page Page, bodyType string, rate float64) float64 {
	var widths []float64
	for _, f := range page.Fragments {
		if f.Type == bodyType {
			widths = append(widths, float64(f.Width))
		}
	}
	if len(widths) == 0 {
		return math.Inf(1)
	}
	return Median(widths) * rate
}

// Metrics computes both page thresholds. ok follows CharaHeight.
func Metrics(page Page, cfg Config) (PageMetrics, bool) {
	height, ok := CharaHeight(page, cfg.BodyType)
	if !ok {
		return PageMetrics{}, false
	}
	return PageMetrics{
		CharaHeight:    height,
		EmptyLineWidth: EmptyLineWidth(page, cfg.BodyType, cfg.EmptyLineRate),
	}, true
}

func isBody(f Fragment, bodyType string) bool {
	return f.Type == bodyType && f.Text != ""
}
