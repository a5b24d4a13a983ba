package layout

import (
	"cmp"
	"math"
	"slices"
)

// ColumnExtent is the span a column's fragments cover along the text flow.
// An empty column has MinY = +Inf and MaxY = -Inf so it never triggers an indent.
type ColumnExtent struct {
	MinY float64 // smallest Y
	MaxY float64 // largest Y + Height
}

// Extents is indexed by Column; index 0 (ColumnNone) is unused.
type Extents [3]ColumnExtent

// Of returns the extent of the fragment's column.
func (e Extents) Of(c Column) ColumnExtent { return e[c] }

// AssignColumns tags each fragment in place: Column2 when Y lies below the
// baseline, Column1 otherwise.
func AssignColumns(frags []Fragment, baseline float64) {
	for i := range frags {
		if float64(frags[i].Y) > baseline {
			frags[i].Column = Column2
		} else {
			frags[i].Column = Column1
		}
	}
}

// SortReadingOrder sorts by column ascending, then X descending. Vertical lines
// are read right to left, so the largest X comes first. Fragments equal on both
// keys keep their source order.
func SortReadingOrder(frags []Fragment) {
	slices.SortStableFunc(frags, func(a, b Fragment) int {
		if c := cmp.Compare(a.Column, b.Column); c != 0 {
			return c
		}
		return cmp.Compare(b.X, a.X)
	})
}

// ColumnExtents computes the per-column extents of tagged fragments.
func ColumnExtents(frags []Fragment) Extents {
	var ext Extents
	for c := range ext {
		ext[c] = ColumnExtent{MinY: math.Inf(1), MaxY: math.Inf(-1)}
	}
	for _, f := range frags {
		e := &ext[f.Column]
		e.MinY = math.Min(e.MinY, float64(f.Y))
		e.MaxY = math.Max(e.MaxY, float64(f.Bottom()))
	}
	return ext
}
