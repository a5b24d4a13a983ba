// Package gdocai feeds Google Document AI OCR results into the reading-order
// reconstruction.
//
// Document AI returns text lines with bounding polygons but, for vertical
// Japanese, no dependable reading order. The package converts every detected
// line into a body-text layout fragment and leaves ordering to the layout stage.
//
// Key Features:
//
// - Process scanned documents (PDF, TIFF, PNG, JPEG, ...) with a Document AI OCR processor
// - Load Document AI responses saved as JSON, so a document is only sent once
// - Convert absolute or normalized bounding polygons into page coordinates
//
// Main Functions:
//
// - ProcessDocument: Sends a document to Google Document AI for processing
// - LoadDocumentJSON / MarshalDocumentJSON: Read and write saved responses
// - ToDocument: Converts a Document AI response into a layout.Document
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for OCR
// - Authentication via GOOGLE_APPLICATION_CREDENTIALS environment variable
package gdocai

import "github.com/gardar/tatekumi/internal/logger"

var Logger = logger.GetLogger("gdocai")
