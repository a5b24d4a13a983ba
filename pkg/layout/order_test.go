package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignColumns(t *testing.T) {
	frags := []Fragment{body("a", 0, 500, 1, 1), body("b", 0, 501, 1, 1), body("c", 0, 0, 1, 1)}
	AssignColumns(frags, 500)

	assert.Equal(t, Column1, frags[0].Column)
	assert.Equal(t, Column2, frags[1].Column)
	assert.Equal(t, Column1, frags[2].Column)

	AssignColumns(frags, math.Inf(1))
	for _, f := range frags {
		assert.Equal(t, Column1, f.Column)
	}
}

func TestSortReadingOrder(t *testing.T) {
	frags := []Fragment{
		body("c2-low", 100, 1500, 10, 10),
		body("c1-low", 100, 0, 10, 10),
		body("c2-high", 900, 1200, 10, 10),
		body("c1-high", 900, 50, 10, 10),
		body("c1-mid", 500, 0, 10, 10),
	}
	AssignColumns(frags, 1000)
	SortReadingOrder(frags)

	var order []string
	for _, f := range frags {
		order = append(order, f.Text)
	}
	assert.Equal(t, []string{"c1-high", "c1-mid", "c1-low", "c2-high", "c2-low"}, order)

	for i := 1; i < len(frags); i++ {
		prev, curr := frags[i-1], frags[i]
		if prev.Column == curr.Column {
			assert.Greater(t, prev.X, curr.X, "fragments %d and %d out of order", i-1, i)
		} else {
			assert.Less(t, int(prev.Column), int(curr.Column))
		}
	}
}

func TestSortReadingOrderKeepsSourceOrderOnTies(t *testing.T) {
	frags := []Fragment{body("first", 100, 0, 1, 1), body("second", 100, 10, 1, 1)}
	AssignColumns(frags, math.Inf(1))
	SortReadingOrder(frags)
	assert.Equal(t, "first", frags[0].Text)
}

func TestColumnExtents(t *testing.T) {
	frags := []Fragment{body("a", 0, 20, 1, 300), body("b", 0, 0, 1, 200)}
	AssignColumns(frags, math.Inf(1))
	ext := ColumnExtents(frags)

	assert.Equal(t, ColumnExtent{MinY: 0, MaxY: 320}, ext.Of(Column1))
	assert.True(t, math.IsInf(ext.Of(Column2).MinY, 1))
	assert.True(t, math.IsInf(ext.Of(Column2).MaxY, -1))
}
