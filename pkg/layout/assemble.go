package layout

import "strings"

// PreparedPage is a page ready for line assembly: body fragments tagged and in
// reading order, plus the thresholds computed for it.
type PreparedPage struct {
	Number    int
	Width     int
	Height    int
	Fragments []Fragment // reading order
	Metrics   PageMetrics
	Extents   Extents
	Skip      bool // no body text, the page contributes nothing
}

// PageLines is the result of assembling one page.
type PageLines struct {
	Lines []string
	// FirstIndent reports whether the first line opens a paragraph. When false
	// the first line continues the last line of the previous page.
	FirstIndent bool
	// NextPageIndent is the Continuation handed to the following page.
	NextPageIndent bool
}

// IsIndent reports whether f starts lower than the top of its column by more than
// IndentHeadRate character heights.
func IsIndent(f Fragment, minY, charaHeight float64, cfg Config) bool {
	return float64(f.Y) > minY+charaHeight*cfg.IndentHeadRate
}

// IsNextIndent reports whether f stops short of the bottom of its column by more
// than IndentTailRate character heights, which ends the paragraph after it.
func IsNextIndent(f Fragment, maxY, charaHeight float64, cfg Config) bool {
	return float64(f.Bottom()) < maxY-charaHeight*cfg.IndentTailRate
}

// ExistsEmptyLine reports a blank separator line between two consecutive
// fragments of the same column.
func ExistsEmptyLine(prev, curr Fragment, emptyLineWidth float64) bool {
	return float64(prev.X-curr.X) > emptyLineWidth && prev.Column == curr.Column
}

// AssemblePage turns the ordered fragments of one page into logical lines.
// indentFirst is the Continuation left by the previous page.
func AssemblePage(p PreparedPage, indentFirst Continuation, cfg Config) PageLines {
	if len(p.Fragments) == 0 {
		return PageLines{}
	}
	height := p.Metrics.CharaHeight
	first := p.Fragments[0]
	last := p.Fragments[len(p.Fragments)-1]
	firstIndent := IsIndent(first, p.Extents.Of(first.Column).MinY, height, cfg) || bool(indentFirst)

	var lines []string
	var current strings.Builder
	if firstIndent && !IsUtterance(first.Text) {
		current.WriteString(IndentMarker)
	}
	flush := func(next string) {
		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(next)
	}

	prev := first
	nextIndent := false
	for _, f := range p.Fragments {
		ext := p.Extents.Of(f.Column)
		if !isTrivial(current.String()) {
			switch {
			case ExistsEmptyLine(prev, f, p.Metrics.EmptyLineWidth):
				flush("")
				lines = append(lines, "")
				if !IsUtterance(f.Text) {
					current.WriteString(IndentMarker)
				}
			case IsUtterance(f.Text):
				flush("")
			case IsIndent(f, ext.MinY, height, cfg) || nextIndent:
				flush(IndentMarker)
			}
		}
		current.WriteString(f.Text)
		nextIndent = IsNextIndent(f, ext.MaxY, height, cfg)
		prev = f
	}
	if !isTrivial(current.String()) {
		lines = append(lines, current.String())
	}

	return PageLines{
		Lines:       FixHeadBracket(lines),
		FirstIndent: firstIndent,
		// The trailing gap comes from the last fragment but the dialogue check
		// from the first one. Kept as the tool always behaved.
		NextPageIndent: IsNextIndent(last, p.Extents.Of(Column1).MaxY, height, cfg) || IsUtterance(first.Text),
	}
}
