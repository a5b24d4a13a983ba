package hocr

// HOCR represents the parsed hOCR document
type HOCR struct {
	Title    string            // Document title
	Language string            // Document language
	Metadata map[string]string // ocr-system, ocr-capabilities, ...
	Pages    []Page            // Pages in document order
}

// Page is one page of recognized text
// Corresponds to hOCR element with class: 'ocr_page'
type Page struct {
	ID        string      // Unique identifier
	ImageName string      // Source image filename
	BBox      BoundingBox // Page coordinates
	Lines     []Line      // Text lines in document order, whatever their parent
}

// LineClass is the hOCR class of a text line
type LineClass string

const (
	ClassLine      LineClass = "ocr_line"
	ClassHeader    LineClass = "ocr_header"
	ClassCaption   LineClass = "ocr_caption"
	ClassTextFloat LineClass = "ocr_textfloat"
)

// lineClasses in match order
var lineClasses = []LineClass{ClassLine, ClassHeader, ClassCaption, ClassTextFloat}

// Line represents a line of text
type Line struct {
	ID    string
	Class LineClass
	BBox  BoundingBox
	Words []Word
	Text  string // text of lines written without word elements
}

// Word is a recognized word with bounding box
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	ID         string      // Unique identifier
	Text       string      // The actual text content
	BBox       BoundingBox // Word coordinates
	Confidence float64     // Recognition confidence (0-100)
}

// BoundingBox represents a rectangle in the document
// Used to store hOCR 'bbox' property values
type BoundingBox struct {
	X1 float64 // Left coordinate
	Y1 float64 // Top coordinate
	X2 float64 // Right coordinate
	Y2 float64 // Bottom coordinate
}

// NewBoundingBox creates a bounding box from the x1, y1, x2, y2 order used by
// hOCR 'bbox' properties
func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}
