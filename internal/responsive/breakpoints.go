package responsive

// SizeClass is a coarse screen width bucket.
type SizeClass string

const (
	Small  SizeClass = "small"
	Medium SizeClass = "medium"
	Large  SizeClass = "large"
	XLarge SizeClass = "xlarge"
)

// Breakpoints are inclusive upper bounds over width, in ascending order.
// XLarge is informational; widths above Large are always XLarge.
type Breakpoints struct {
	Small  float64
	Medium float64
	Large  float64
	XLarge float64
}

// DefaultBreakpoints returns the stock 320/375/414/480 table.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Small: 320, Medium: 375, Large: 414, XLarge: 480}
}

// Classify returns the first bucket whose breakpoint width is <= to.
// A width equal to a breakpoint belongs to that (lower) bucket.
func Classify(width float64, bp Breakpoints) SizeClass {
	switch {
	case width <= bp.Small:
		return Small
	case width <= bp.Medium:
		return Medium
	case width <= bp.Large:
		return Large
	default:
		return XLarge
	}
}

// Snapshot is the derived view of a Scaler's metrics that screens branch on.
type Snapshot struct {
	Width    float64
	Height   float64
	IsSmall  bool // width <= Medium breakpoint
	IsMedium bool // Medium < width <= Large
	IsLarge  bool // width > Large
	Size     SizeClass
}

// Snapshot derives the size flags for the current metrics.
func (s Scaler) Snapshot() Snapshot {
	w := s.metrics.Width
	bp := s.opts.Breakpoints
	return Snapshot{
		Width:    w,
		Height:   s.metrics.Height,
		IsSmall:  w <= bp.Medium,
		IsMedium: w > bp.Medium && w <= bp.Large,
		IsLarge:  w > bp.Large,
		Size:     Classify(w, bp),
	}
}

// Pick chooses a value by screen flags. Zero values count as unset, so
// medium falls back to small and large falls back to medium, then small.
func Pick[T comparable](snap Snapshot, small, medium, large T) T {
	var zero T
	switch {
	case snap.IsSmall:
		return small
	case snap.IsMedium:
		if medium != zero {
			return medium
		}
		return small
	default:
		if large != zero {
			return large
		}
		if medium != zero {
			return medium
		}
		return small
	}
}
