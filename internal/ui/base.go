package ui

// Base is embedded by popups and widgets that track their own size and
// focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }

func (b Base) Size() (width, height int) { return b.width, b.height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// TooSmall reports whether the area is below MinWidth x MinHeight.
func (b Base) TooSmall() bool {
	return b.width < MinWidth || b.height < MinHeight
}
