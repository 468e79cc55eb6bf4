package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand colors
	Primary     lipgloss.Color // Blue - headers, focused items
	PrimaryDark lipgloss.Color // Gradient end of the header
	Accent      lipgloss.Color // Orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase    lipgloss.Color
	FgMuted   lipgloss.Color
	FgSubtle  lipgloss.Color
	FgInverse lipgloss.Color // Text on Primary backgrounds

	// Backgrounds
	BgBase   lipgloss.Color
	BgCard   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - giving, confirmations
	Error   lipgloss.Color // Red - validation errors, LIVE badge
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style // Bold, bright
	Heading  lipgloss.Style // Section headings in the primary color
	Cursor   lipgloss.Style // Selected row
	Badge    lipgloss.Style // Filled chip, e.g. the active category
	Chip     lipgloss.Style // Unselected chip
	Card     lipgloss.Style
	CardSel  lipgloss.Style
	Input    lipgloss.Style
	InputSel lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var lightTheme = Theme{
	Name:        "light",
	Primary:     lipgloss.Color("#3498DB"),
	PrimaryDark: lipgloss.Color("#2E86C1"),
	Accent:      lipgloss.Color("#E67E22"),

	FgBase:    lipgloss.Color("#2C3E50"),
	FgMuted:   lipgloss.Color("#7F8C8D"),
	FgSubtle:  lipgloss.Color("#BDC3C7"),
	FgInverse: lipgloss.Color("#FFFFFF"),

	BgBase:   lipgloss.Color("#F8F9FA"),
	BgCard:   lipgloss.Color("#FFFFFF"),
	BgCursor: lipgloss.Color("#E9ECEF"),

	Border:      lipgloss.Color("#BDC3C7"),
	BorderFocus: lipgloss.Color("#3498DB"),

	Success: lipgloss.Color("#27AE60"),
	Error:   lipgloss.Color("#E74C3C"),
	Warning: lipgloss.Color("#F39C12"),
}

var darkTheme = Theme{
	Name:        "dark",
	Primary:     lipgloss.Color("#5DADE2"),
	PrimaryDark: lipgloss.Color("#2E86C1"),
	Accent:      lipgloss.Color("#F39C12"),

	FgBase:    lipgloss.Color("#E0E0E0"),
	FgMuted:   lipgloss.Color("#95A5A6"),
	FgSubtle:  lipgloss.Color("#5F6A6A"),
	FgInverse: lipgloss.Color("#FFFFFF"),

	BgBase:   lipgloss.Color("#1A1A1A"),
	BgCard:   lipgloss.Color("#242424"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#4A4A4A"),
	BorderFocus: lipgloss.Color("#5DADE2"),

	Success: lipgloss.Color("#2ECC71"),
	Error:   lipgloss.Color("#E74C3C"),
	Warning: lipgloss.Color("#F39C12"),
}

var (
	mu      sync.RWMutex
	current = &lightTheme
)

// T returns the active theme.
func T() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDark switches between the light and dark themes.
func SetDark(dark bool) {
	mu.Lock()
	defer mu.Unlock()
	if dark {
		current = &darkTheme
	} else {
		current = &lightTheme
	}
}

// Init selects the theme by config name ("light" or "dark").
func Init(name string) {
	SetDark(name == "dark")
}

// IsDark reports whether the dark theme is active.
func IsDark() bool {
	return T().Name == "dark"
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase).
			Bold(true),
		Badge: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.FgInverse).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		Card:    card,
		CardSel: card.BorderForeground(t.BorderFocus),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Border),
		InputSel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.BorderFocus),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// AccentStyle returns a foreground style for a hex accent color, falling back
// to the theme primary when hex is empty.
func (t *Theme) AccentStyle(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(t.Primary)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// CardStyle returns the card style, highlighted when selected.
func CardStyle(selected bool) lipgloss.Style {
	if selected {
		return T().S().CardSel
	}
	return T().S().Card
}
