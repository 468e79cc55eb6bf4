// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the screens.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a card border.
	BorderHeight = 2

	// TabBarHeight is the tab bar plus its separator.
	TabBarHeight = 2

	// FooterHeight is the key hint line at the bottom of every screen.
	FooterHeight = 1

	// MinWidth is the narrowest terminal the app renders for.
	MinWidth = 30

	// MinHeight is the shortest terminal the app renders for.
	MinHeight = 10
)
