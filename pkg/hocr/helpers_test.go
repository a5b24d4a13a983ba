package hocr

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/tatekumi/pkg/layout"
)

func TestToDocument(t *testing.T) {
	data, err := os.ReadFile("testdata/vertical.hocr")
	require.NoError(t, err)
	h, err := ParseHOCR(data)
	require.NoError(t, err)

	doc := ToDocument(h)
	require.Len(t, doc.Pages, 2)

	p1 := doc.Pages[0]
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 1200, p1.Width)
	assert.Equal(t, 1600, p1.Height)
	assert.Equal(t, []layout.Fragment{
		{X: 920, Y: 80, Width: 40, Height: 220, Type: "ocr_header", Text: "第一"},
		{X: 880, Y: 100, Width: 40, Height: 520, Type: layout.BodyText, Text: "こんに"},
	}, p1.Fragments)

	p2 := doc.Pages[1]
	assert.Equal(t, 2, p2.Number)
	assert.Equal(t, []layout.Fragment{
		{X: 880, Y: 0, Width: 40, Height: 500, Type: layout.BodyText, Text: "さようなら"},
	}, p2.Fragments)
}
