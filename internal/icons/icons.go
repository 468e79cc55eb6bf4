package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Book      string
	Calendar  string
	Church    string
	Give      string
	Live      string
	Mail      string
	People    string
	Phone     string
	Prayer    string
	Web       string
	Check     string
	Unchecked string
}

var (
	nerdIcons = Icons{
		Book:      " ", // nf-fa-book
		Calendar:  " ", // nf-fa-calendar
		Church:    "󰗇 ",      // nf-md-church
		Give:      " ", // nf-fa-hand_holding_heart
		Live:      " ", // nf-fa-video_camera
		Mail:      " ", // nf-fa-envelope
		People:    " ", // nf-fa-users
		Phone:     " ", // nf-fa-phone
		Prayer:    "󱠇 ",      // nf-md-hands_pray
		Web:       " ", // nf-fa-globe
		Check:     "",  // nf-fa-check_square
		Unchecked: "",  // nf-fa-square_o
	}

	unicodeIcons = Icons{
		Book:      "📖 ",
		Calendar:  "📅 ",
		Church:    "⛪ ",
		Give:      "💝 ",
		Live:      "📺 ",
		Mail:      "✉ ",
		People:    "👥 ",
		Phone:     "📞 ",
		Prayer:    "🙏 ",
		Web:       "🌐 ",
		Check:     "☑",
		Unchecked: "☐",
	}

	noneIcons = Icons{
		Check:     "[x]",
		Unchecked: "[ ]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// For returns the glyph (with trailing space) for a content icon key
// such as "prayer" or "calendar". Unknown keys return "".
func For(key string) string {
	switch key {
	case "book":
		return current.Book
	case "calendar":
		return current.Calendar
	case "church":
		return current.Church
	case "give":
		return current.Give
	case "live":
		return current.Live
	case "mail":
		return current.Mail
	case "people":
		return current.People
	case "phone":
		return current.Phone
	case "prayer":
		return current.Prayer
	case "web":
		return current.Web
	}
	return ""
}

// Format prefixes name with the glyph for key.
func Format(key, name string) string {
	return For(key) + name
}

// Checkbox renders a toggle state.
func Checkbox(on bool) string {
	if on {
		return current.Check
	}
	return current.Unchecked
}
