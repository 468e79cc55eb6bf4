package textinput

import "github.com/gccma/gccma/internal/ui/action"

// Result is what the input popup hands back when it closes.
type Result struct {
	Text     string
	Context  any
	Canceled bool // esc
}

func (Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a for delivery to the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
