package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		input []float64
		want  float64
	}{
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{7}, 7},
		{[]float64{10, 20}, 15},
	}

	for _, tc := range tests {
		got := Median(tc.input)
		if got != tc.want {
			t.Errorf("Median(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}

	assert.True(t, math.IsNaN(Median(nil)))
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestColumnBaseline(t *testing.T) {
	pages := []Page{
		{Fragments: []Fragment{body("あ", 0, 100, 10, 10), body("い", 0, 900, 10, 10)}},
		{Fragments: []Fragment{body("あ", 0, 200, 10, 10), {Y: 1000, Type: "図版"}}},
		{Fragments: []Fragment{body("あ", 0, 0, 10, 10), body("い", 0, 800, 10, 10)}},
	}

	// midpoints 500, 600, 400; non-body fragments count too
	assert.Equal(t, 500.0, ColumnBaseline(pages, 5))
	assert.Equal(t, 550.0, ColumnBaseline(pages, 2))
}

func TestColumnBaselineWithoutFragments(t *testing.T) {
	assert.True(t, math.IsInf(ColumnBaseline(nil, 5), 1))
	assert.True(t, math.IsInf(ColumnBaseline([]Page{{}, {}}, 5), 1))

	pages := []Page{{}, {Fragments: []Fragment{body("あ", 0, 100, 10, 10), body("い", 0, 300, 10, 10)}}}
	assert.Equal(t, 200.0, ColumnBaseline(pages, 5))
}

func TestCharaHeight(t *testing.T) {
	page := Page{Fragments: []Fragment{
		body("あいう", 0, 0, 30, 300),
		body("えお", 0, 0, 30, 200),
		body("", 0, 0, 30, 5000),
		{Type: "見出し", Text: "x", Height: 999},
	}}

	height, ok := CharaHeight(page, BodyText)
	assert.True(t, ok)
	assert.Equal(t, 100.0, height)

	_, ok = CharaHeight(Page{Fragments: []Fragment{{Type: "図版", Text: "x"}}}, BodyText)
	assert.False(t, ok)
}

func TestEmptyLineWidth(t *testing.T) {
	page := Page{Fragments: []Fragment{
		body("あ", 0, 0, 40, 10),
		body("い", 0, 0, 60, 10),
		body("う", 0, 0, 50, 10),
		{Type: "図版", Width: 1000},
	}}

	assert.Equal(t, 100.0, EmptyLineWidth(page, BodyText, 2))
	assert.True(t, math.IsInf(EmptyLineWidth(Page{}, BodyText, 2), 1))
}
