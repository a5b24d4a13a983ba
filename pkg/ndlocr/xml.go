package ndlocr

import (
	"fmt"
	"io"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/gardar/tatekumi/pkg/layout"
)

// every element directly below the root is a page
var pageExpr = xpath.MustCompile("/*/*")

// geometry attributes every fragment must carry, in report order
var geometryAttrs = []string{"X", "Y", "WIDTH", "HEIGHT"}

// ParseXML reads an NDL OCR XML result. Non-UTF-8 documents are decoded
// according to their XML declaration.
func ParseXML(r io.Reader) (layout.Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return layout.Document{}, fmt.Errorf("failed to parse NDL OCR XML: %w", err)
	}

	var doc layout.Document
	for i, node := range xmlquery.QuerySelectorAll(root, pageExpr) {
		page, err := parsePage(node, i+1)
		if err != nil {
			return layout.Document{}, err
		}
		doc.Pages = append(doc.Pages, page)
	}
	Logger.Debug("parsed NDL OCR XML", "pages", len(doc.Pages))
	return doc, nil
}

func parsePage(node *xmlquery.Node, number int) (layout.Page, error) {
	page := layout.Page{Number: number}
	// page size is informative only
	if w, err := strconv.Atoi(node.SelectAttr("WIDTH")); err == nil {
		page.Width = w
	}
	if h, err := strconv.Atoi(node.SelectAttr("HEIGHT")); err == nil {
		page.Height = h
	}

	index := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		f, err := parseFragment(child)
		if err != nil {
			err.Page, err.Index = number, index
			return layout.Page{}, err
		}
		page.Fragments = append(page.Fragments, f)
		index++
	}
	return page, nil
}

func parseFragment(node *xmlquery.Node) (layout.Fragment, *layout.ValidationError) {
	var geom [4]int
	for i, name := range geometryAttrs {
		raw, ok := attr(node, name)
		if !ok {
			return layout.Fragment{}, &layout.ValidationError{Field: name, Reason: "missing attribute"}
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return layout.Fragment{}, &layout.ValidationError{Field: name, Reason: fmt.Sprintf("not an integer: %q", raw)}
		}
		geom[i] = v
	}
	typ, ok := attr(node, "TYPE")
	if !ok {
		return layout.Fragment{}, &layout.ValidationError{Field: "TYPE", Reason: "missing attribute"}
	}
	text, _ := attr(node, "STRING")

	return layout.Fragment{
		X:      geom[0],
		Y:      geom[1],
		Width:  geom[2],
		Height: geom[3],
		Type:   typ,
		Text:   text,
	}, nil
}

// attr distinguishes a missing attribute from an empty one
func attr(node *xmlquery.Node, name string) (string, bool) {
	for _, a := range node.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
