package layout

import "fmt"

// BodyText is the fragment category NDL OCR uses for body text.
const BodyText = "本文"

// IndentMarker is prepended to a line that opens an indented paragraph.
const IndentMarker = "　"

// Column identifies one of the two reading tiers of a page.
type Column int

const (
	ColumnNone Column = iota // not assigned yet
	Column1                  // upper tier, read first
	Column2                  // lower tier
)

func (c Column) String() string {
	switch c {
	case Column1:
		return "column1"
	case Column2:
		return "column2"
	default:
		return "none"
	}
}

// Fragment is a single OCR-recognized text element.
// Y runs along the text flow inside a column, X across the lines.
type Fragment struct {
	X, Y          int
	Width, Height int
	Type          string // category label, only BodyText fragments are read
	Text          string
	Column        Column // set by AssignColumns
}

// Bottom returns the end of the fragment along the text flow.
func (f Fragment) Bottom() int { return f.Y + f.Height }

// Validate reports corrupt geometry.
func (f Fragment) Validate() error {
	if f.Width < 0 {
		return &ValidationError{Field: "WIDTH", Reason: fmt.Sprintf("negative value %d", f.Width)}
	}
	if f.Height < 0 {
		return &ValidationError{Field: "HEIGHT", Reason: fmt.Sprintf("negative value %d", f.Height)}
	}
	return nil
}

// Page is the unordered fragment set of one scanned page.
type Page struct {
	Number    int // 1-based position in the source
	Width     int // scanned page size, 0 when the source does not say
	Height    int
	Fragments []Fragment
}

// Document is the ordered page sequence of one OCR result.
type Document struct {
	Pages []Page
}
