package responsive

import "math"

// Reference terminal size that maps onto the baseline surface.
const (
	DefaultReferenceColumns = 80
	DefaultReferenceRows    = 24
)

// Grid maps terminal cells to design points and back. A terminal of
// Columns x Rows cells is treated as exactly the Baseline surface.
type Grid struct {
	Columns  int
	Rows     int
	Baseline Baseline
}

// DefaultGrid maps an 80x24 terminal onto the 350x680 baseline.
func DefaultGrid() Grid {
	return Grid{
		Columns:  DefaultReferenceColumns,
		Rows:     DefaultReferenceRows,
		Baseline: DefaultBaseline(),
	}
}

func (g Grid) pointsPerColumn() float64 {
	return g.Baseline.Width / float64(g.Columns)
}

func (g Grid) pointsPerRow() float64 {
	return g.Baseline.Height / float64(g.Rows)
}

// Metrics converts a terminal size in cells into design points.
func (g Grid) Metrics(cols, rows int) Metrics {
	return Metrics{
		Width:  float64(cols) * g.pointsPerColumn(),
		Height: float64(rows) * g.pointsPerRow(),
	}
}

// ToColumns converts a horizontal size in points to whole columns.
func (g Grid) ToColumns(points float64) int {
	return toCells(points / g.pointsPerColumn())
}

// ToRows converts a vertical size in points to whole rows.
func (g Grid) ToRows(points float64) int {
	return toCells(points / g.pointsPerRow())
}

func toCells(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxInt32
	}
	return int(math.Round(v))
}
