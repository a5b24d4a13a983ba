// Package ndlocr reads the output of the NDL OCR engine into layout documents.
//
// Two serializations are supported:
//
// - XML: an OCRDATASET root holding one PAGE element per scanned page, each with
// LINE (or BLOCK) children carrying X, Y, WIDTH, HEIGHT, TYPE and STRING attributes
// - JSON: the per-book array of pages, each an array of lines with a four point
// boundingBox, an isTextline flag and the recognized text
//
// Main Functions:
//
// - ParseXML: XML result to layout.Document
// - ParseJSON: JSON result to layout.Document
package ndlocr

import "github.com/gardar/tatekumi/internal/logger"

var Logger = logger.GetLogger("ndlocr")

// NonText is the fragment type given to JSON lines not flagged as text lines.
const NonText = "non-text"
