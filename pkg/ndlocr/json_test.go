package ndlocr

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/tatekumi/pkg/layout"
)

func TestParseJSON(t *testing.T) {
	f, err := os.Open("testdata/book.json")
	require.NoError(t, err)
	defer f.Close()

	doc, err := ParseJSON(f)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)

	frags := doc.Pages[0].Fragments
	require.Len(t, frags, 2)
	assert.Equal(t, layout.Fragment{X: 900, Y: 100, Width: 40, Height: 500, Type: layout.BodyText, Text: "こんにちは"}, frags[0])
	assert.Equal(t, NonText, frags[1].Type)

	assert.Equal(t, 2, doc.Pages[1].Number)
	assert.Empty(t, doc.Pages[1].Fragments)
}

func TestBoundingBoxRect(t *testing.T) {
	// skewed quad, corners out of order
	box := BoundingBox{{12, 5}, {50, 8}, {48, 300}, {10, 298}}
	x, y, w, h := box.Rect()
	assert.Equal(t, []int{10, 5, 40, 295}, []int{x, y, w, h})
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"pages": 1}`))
	assert.Error(t, err)
}

func TestParseJSONBoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		page   int
		index  int
		reason string
	}{
		{
			name:   "short box",
			src:    `[[{"boundingBox":[[900,100],[940,600]],"isTextline":"true","text":"あ"}]]`,
			page:   1,
			index:  0,
			reason: "2 corners, want 4",
		},
		{
			name: "missing box",
			src: `[[],[{"boundingBox":[[900,100],[940,100],[940,600],[900,600]],"isTextline":"true","text":"あ"},` +
				`{"isTextline":"true","text":"い"}]]`,
			page:   2,
			index:  1,
			reason: "missing",
		},
		{
			name:   "null box",
			src:    `[[{"boundingBox":null,"isTextline":"false","text":""}]]`,
			page:   1,
			index:  0,
			reason: "missing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(tc.src))
			var verr *layout.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.page, verr.Page)
			assert.Equal(t, tc.index, verr.Index)
			assert.Equal(t, "boundingBox", verr.Field)
			assert.Equal(t, tc.reason, verr.Reason)
		})
	}
}
