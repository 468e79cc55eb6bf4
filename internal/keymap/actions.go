package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back"

	// Tab switching
	ActionNextTab     Action = "next_tab"
	ActionPrevTab     Action = "prev_tab"
	ActionTabHome     Action = "tab_home"
	ActionTabSermons  Action = "tab_sermons"
	ActionTabEvents   Action = "tab_events"
	ActionTabConnect  Action = "tab_connect"
	ActionTabMore     Action = "tab_more"
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionPrevFilter  Action = "prev_filter"
	ActionNextFilter  Action = "next_filter"
	ActionSelect      Action = "select" // enter - open/activate
	ActionSearch      Action = "search"
	ActionClearSearch Action = "clear_search"
	ActionCopy        Action = "copy"

	// Forms
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"
	ActionToggle    Action = "toggle" // space on a checkbox
	ActionSubmit    Action = "submit"

	// Live stream
	ActionPlayPause Action = "play_pause"
	ActionShare     Action = "share"
	ActionGive      Action = "give"
	ActionPray      Action = "pray"
	ActionFull      Action = "fullscreen"
	ActionPrevious  Action = "previous_services"
)
