// Package layout turns the terminal size into the dimensions screens draw
// with, using the responsive scale calculator.
package layout

import (
	"github.com/gccma/gccma/internal/responsive"
	"github.com/gccma/gccma/internal/ui"
)

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// Design sizes in points, before scaling.
const (
	titleFontSize = 28
	bodyFontSize  = 16
)

// Layout is the responsive frame for one terminal size. The zero value
// is usable and describes an empty terminal.
type Layout struct {
	width, height int
	grid          responsive.Grid
	scaler        responsive.Scaler
	snap          responsive.Snapshot
}

// New builds the layout for a width x height terminal.
func New(width, height int, grid responsive.Grid, opts responsive.Options) Layout {
	if grid.Columns <= 0 || grid.Rows <= 0 {
		grid = responsive.DefaultGrid()
	}
	scaler := responsive.NewScaler(grid.Metrics(width, height), opts)
	return Layout{
		width:  width,
		height: height,
		grid:   grid,
		scaler: scaler,
		snap:   scaler.Snapshot(),
	}
}

// Default builds the layout with the stock grid and options.
func Default(width, height int) Layout {
	return New(width, height, responsive.DefaultGrid(), responsive.DefaultOptions())
}

// Width is the terminal width in columns.
func (l Layout) Width() int { return l.width }

// Height is the terminal height in rows.
func (l Layout) Height() int { return l.height }

// Scaler exposes the underlying calculator.
func (l Layout) Scaler() responsive.Scaler { return l.scaler }

// Snapshot returns the size flags of the terminal.
func (l Layout) Snapshot() responsive.Snapshot { return l.snap }

// Compact reports a small screen: tab initials, single-column lists.
func (l Layout) Compact() bool { return l.snap.IsSmall }

// TooSmall reports whether the terminal is below the minimum the app
// renders for.
func (l Layout) TooSmall() bool {
	return l.width < ui.MinWidth || l.height < ui.MinHeight
}

// Columns converts a moderate-scaled horizontal size to columns.
func (l Layout) Columns(points float64) int {
	if l.grid.Columns == 0 {
		return 0
	}
	return l.grid.ToColumns(l.scaler.ModerateScaleDefault(points))
}

// Rows converts a vertically scaled size to rows.
func (l Layout) Rows(points float64) int {
	if l.grid.Rows == 0 {
		return 0
	}
	return l.grid.ToRows(l.scaler.VerticalScale(points))
}

// Padding is the horizontal inset of screen content, at least one column.
func (l Layout) Padding() int {
	return max(1, l.Columns(l.scaler.Spacing().SM))
}

// Gap is the number of blank rows between sections: none on short
// terminals, otherwise at least one.
func (l Layout) Gap() int {
	if l.height < 2*ui.MinHeight {
		return 0
	}
	return max(1, l.Rows(l.scaler.Spacing().SM))
}

// ContentWidth is the width left inside the horizontal padding.
func (l Layout) ContentWidth() int {
	return max(0, l.width-2*l.Padding())
}

// BodyHeight is the height below the tab bar and above the footer.
func (l Layout) BodyHeight() int {
	return max(0, l.height-ui.TabBarHeight-ui.FooterHeight)
}

// Grid returns how many tiles fit per row: small, medium or large.
func (l Layout) Grid(small, medium, large int) int {
	return max(1, responsive.Pick(l.snap, small, medium, large))
}

// TileWidth splits the content width into n tiles separated by one
// column.
func (l Layout) TileWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, (l.ContentWidth()-(n-1))/n)
}

// Banner reports whether titles get the large gradient banner: only when
// a 28pt title would render at full size or larger.
func (l Layout) Banner() bool {
	return !l.Compact() && l.scaler.FontSize(titleFontSize) >= titleFontSize
}

// TextScale is the body font scale relative to nominal, used to widen
// wrapped text on big terminals.
func (l Layout) TextScale() float64 {
	return l.scaler.FontSize(bodyFontSize) / bodyFontSize
}

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}
