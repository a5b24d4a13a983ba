// Package hocr parses hOCR, the HTML-based OCR result format, as written by
// Tesseract with the jpn_vert model among others, and turns it into layout
// documents.
//
// Only the parts the reading-order stage needs are modeled:
//
// - Pages with class 'ocr_page', their bounding box and physical page number
// - Text lines with class 'ocr_line', 'ocr_header', 'ocr_caption' or 'ocr_textfloat'
// - Words with class 'ocrx_word' and their confidence
//
// Areas and paragraphs are walked through but not kept: the layout stage
// re-derives reading order from line geometry alone.
//
// Main Functions:
//
// - ParseHOCR: Parses hOCR data into the object model
// - ToDocument: Converts a parsed document into a layout.Document
// - ParseTitle / ParseBoundingBoxFromTitle: hOCR title property helpers
package hocr

import "github.com/gardar/tatekumi/internal/logger"

var Logger = logger.GetLogger("hocr")
