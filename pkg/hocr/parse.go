package hocr

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/gardar/tatekumi/pkg/layout"
)

// ParseHOCR converts raw hOCR data into a structured HOCR object.
// A text line without a bounding box fails the whole document with a
// *layout.ValidationError.
func ParseHOCR(data []byte) (HOCR, error) {
	result := HOCR{Metadata: make(map[string]string)}

	// Figure out the character encoding
	label := detectCharset(data)
	enc, err := lookupEncoding(label)
	if err != nil {
		return result, err
	}

	doc, err := html.Parse(enc.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return result, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	// Extract document metadata from the head section
	extractDocumentMeta(&result, doc)

	// Find and process all ocr_page elements
	var perr error
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if perr != nil {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			page, err := processPage(n, len(result.Pages)+1)
			if err != nil {
				perr = err
				return
			}
			result.Pages = append(result.Pages, page)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)
	if perr != nil {
		return HOCR{}, perr
	}

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no ocr_page elements found in hOCR data")
	}
	Logger.Debug("parsed hOCR", "pages", len(result.Pages), "charset", label)
	return result, nil
}

// prescanLimit bounds the search for a charset declaration when the document
// has no closing head tag.
const prescanLimit = 1024

// detectCharset returns the charset declared in a meta tag of the head section,
// utf-8 when none is. Body text is never searched.
func detectCharset(data []byte) string {
	const key = "charset="
	lower := asciiLower(data)
	end := min(len(data), prescanLimit)
	if i := bytes.Index(lower, []byte("</head")); i >= 0 {
		end = i
	}
	head := data[:end]
	i := bytes.Index(lower[:end], []byte(key))
	if i < 0 {
		return "utf-8"
	}
	snippet := string(head[i+len(key) : min(len(head), i+len(key)+20)])
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>' || r == '/' || r == ' '
	})
	if len(fields) == 0 {
		return "utf-8"
	}
	return strings.ToLower(fields[0])
}

// asciiLower lowercases ASCII letters only, keeping byte offsets of any encoding
func asciiLower(data []byte) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "utf-8" || label == "utf8" {
		return encoding.Nop, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		// old Tesseract builds declare Latin-1 under non-standard names
		Logger.Warn("unknown charset, decoding as ISO-8859-1", "charset", label)
		return charmap.ISO8859_1, nil
	}
	return enc, nil
}

// ParseTitle breaks down an hOCR title attribute into its components
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for part := range strings.SplitSeq(title, ";") {
		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

// ParseBoundingBoxFromTitle extracts a bounding box from a title string
// Returns nil if the title has no complete, numeric bbox
func ParseBoundingBoxFromTitle(title string) *BoundingBox {
	bbox, ok := ParseTitle(title)["bbox"]
	if !ok || len(bbox) < 4 {
		return nil
	}
	var v [4]float64
	for i := range v {
		f, err := strconv.ParseFloat(bbox[i], 64)
		if err != nil {
			return nil
		}
		v[i] = f
	}
	result := NewBoundingBox(v[0], v[1], v[2], v[3])
	return &result
}

// extractDocumentMeta extracts document-level metadata from the head section
func extractDocumentMeta(result *HOCR, doc *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html":
				if lang := getAttrVal(n, "lang"); lang != "" {
					result.Language = lang
				}
			case "title":
				if n.FirstChild != nil {
					result.Title = n.FirstChild.Data
				}
			case "meta":
				name, content := getAttrVal(n, "name"), getAttrVal(n, "content")
				if strings.HasPrefix(name, "ocr-") && content != "" {
					result.Metadata[name] = content
				}
			case "body":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
}

// processPage extracts page information and every text line below it
func processPage(n *html.Node, number int) (Page, error) {
	page := Page{ID: getAttrVal(n, "id")}

	title := getAttrVal(n, "title")
	if bbox := ParseBoundingBoxFromTitle(title); bbox != nil {
		page.BBox = *bbox
	}
	props := ParseTitle(title)
	if image, ok := props["image"]; ok && len(image) > 0 {
		page.ImageName = strings.Trim(image[0], `"`)
	}

	// lines may sit under areas, paragraphs or the page itself
	var lineErr error
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if lineErr != nil {
			return
		}
		if node.Type == html.ElementNode {
			if class, ok := lineClass(node); ok {
				line, err := processLine(node, class)
				if err != nil {
					err.Page, err.Index = number, len(page.Lines)
					lineErr = err
					return
				}
				page.Lines = append(page.Lines, line)
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c)
	}
	return page, lineErr
}

// processLine extracts line information and its words
func processLine(n *html.Node, class LineClass) (Line, *layout.ValidationError) {
	line := Line{ID: getAttrVal(n, "id"), Class: class}

	bbox := ParseBoundingBoxFromTitle(getAttrVal(n, "title"))
	if bbox == nil {
		return line, &layout.ValidationError{Field: "bbox", Reason: "missing or malformed in " + string(class)}
	}
	line.BBox = *bbox

	var extractWords func(*html.Node)
	extractWords = func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, "ocrx_word") {
			line.Words = append(line.Words, processWord(node))
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			extractWords(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractWords(c)
	}
	if len(line.Words) == 0 {
		line.Text = extractTextContent(n)
	}
	return line, nil
}

// processWord extracts the text and properties of a word element
func processWord(n *html.Node) Word {
	word := Word{ID: getAttrVal(n, "id")}

	title := getAttrVal(n, "title")
	if bbox := ParseBoundingBoxFromTitle(title); bbox != nil {
		word.BBox = *bbox
	}
	if conf, ok := ParseTitle(title)["x_wconf"]; ok && len(conf) > 0 {
		word.Confidence, _ = strconv.ParseFloat(conf[0], 64)
	}

	// Get the actual text content
	if n.FirstChild != nil {
		word.Text = extractTextContent(n)
	}
	return word
}

func lineClass(n *html.Node) (LineClass, bool) {
	classes := strings.Fields(getAttrVal(n, "class"))
	for _, c := range lineClasses {
		if slices.Contains(classes, string(c)) {
			return c, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(getAttrVal(n, "class")), class)
}
