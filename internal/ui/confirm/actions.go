package confirm

import "github.com/gccma/gccma/internal/ui/action"

// Result carries the answer and the context given to AskConfirm.
type Result struct {
	Confirmed bool
	Context   any
}

func (Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a for delivery to the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
