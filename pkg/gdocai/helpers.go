package gdocai

import (
	"fmt"
	"path/filepath"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
)

// mimeTypes lists the input formats accepted by Document AI OCR processors
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// MimeType guesses the MIME type of a document from its file extension
func MimeType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := mimeTypes[ext]; ok {
		return mt, nil
	}
	return "", fmt.Errorf("unsupported document type %q", ext)
}

// LoadDocumentJSON reads a Document AI response saved as JSON
func LoadDocumentJSON(data []byte) (*documentaipb.Document, error) {
	doc := &documentaipb.Document{}
	opts := protojson.UnmarshalOptions{DiscardUnknown: true}
	if err := opts.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse Document AI JSON: %w", err)
	}
	return doc, nil
}

// MarshalDocumentJSON serializes a response so it can be reloaded with
// LoadDocumentJSON. Page images are dropped to keep the file small.
func MarshalDocumentJSON(doc *documentaipb.Document) ([]byte, error) {
	pages := make([]*documentaipb.Document_Page, len(doc.GetPages()))
	for i, p := range doc.GetPages() {
		pages[i] = &documentaipb.Document_Page{
			PageNumber: p.GetPageNumber(),
			Dimension:  p.GetDimension(),
			Layout:     p.GetLayout(),
			Lines:      p.GetLines(),
		}
	}
	slim := &documentaipb.Document{Text: doc.GetText(), Pages: pages}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(slim)
}
