// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "tabs", "list", "sermons", "form", "live"
}

// All contains all key bindings, grouped by context.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionBack, []string{"esc"}, "Back", "global"},

	// Tabs
	{ActionNextTab, []string{"tab"}, "Next tab", "tabs"},
	{ActionPrevTab, []string{"shift+tab"}, "Previous tab", "tabs"},
	{ActionTabHome, []string{"1"}, "Home", "tabs"},
	{ActionTabSermons, []string{"2"}, "Sermons", "tabs"},
	{ActionTabEvents, []string{"3"}, "Events", "tabs"},
	{ActionTabConnect, []string{"4"}, "Connect", "tabs"},
	{ActionTabMore, []string{"5"}, "More", "tabs"},

	// Lists
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "list"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionSelect, []string{"enter"}, "Open", "list"},
	{ActionPrevFilter, []string{"h", "left"}, "Previous category", "list"},
	{ActionNextFilter, []string{"l", "right"}, "Next category", "list"},

	// Sermons
	{ActionSearch, []string{"/"}, "Search sermons", "sermons"},
	{ActionClearSearch, []string{"ctrl+l"}, "Clear search", "sermons"},

	// Connect
	{ActionCopy, []string{"y"}, "Copy link", "connect"},

	// Forms
	{ActionNextField, []string{"tab", "down"}, "Next field", "form"},
	{ActionPrevField, []string{"shift+tab", "up"}, "Previous field", "form"},
	{ActionToggle, []string{" "}, "Toggle / choose", "form"},
	{ActionSubmit, []string{"ctrl+s"}, "Submit", "form"},

	// Live stream
	{ActionPlayPause, []string{" "}, "Play/pause", "live"},
	{ActionShare, []string{"s"}, "Share stream", "live"},
	{ActionGive, []string{"g"}, "Give online", "live"},
	{ActionPray, []string{"p"}, "Prayer request", "live"},
	{ActionFull, []string{"f"}, "Fullscreen", "live"},
	{ActionPrevious, []string{"w"}, "Watch previous services", "live"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of the given contexts, later contexts
// first so their keys win when a Resolver is built from the result.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, c := range contexts {
		result = append(ByContext(c), result...)
	}
	return result
}
