package sheet

// DefaultColumns is the column count used when no explicit column count
// is given.
const DefaultColumns = 5

// GridSpec is the resolved tile layout for one chunk. Both counts are at
// least 1.
type GridSpec struct {
	Columns int
	Rows    int
}

// Capacity returns how many tiles the grid holds.
func (g GridSpec) Capacity() int {
	return g.Columns * g.Rows
}

// ResolveGrid determines the grid for a chunk of frameCount frames.
// columns and rows override their dimension when positive; 0 leaves them
// to be resolved.
//
// The row estimate divides by DefaultColumns even when an explicit
// column count overrides the columns. Callers that set only a column
// count therefore keep the sheet height they would have had with the
// default; do not change this to divide by the resolved count.
//
// The grid is not checked against frameCount; undersized grids are
// handled by Compose's overflow policy.
func ResolveGrid(frameCount, columns, rows int) GridSpec {
	g := GridSpec{Columns: columns, Rows: rows}
	if g.Columns <= 0 {
		g.Columns = DefaultColumns
	}
	if g.Rows <= 0 {
		g.Rows = (frameCount + DefaultColumns - 1) / DefaultColumns
	}
	return g
}
