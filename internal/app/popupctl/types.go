package popupctl

import "slices"

// Type names a popup slot. At most one popup of each type is open.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
	Detail
	Error
)

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Confirm:
		return "confirm"
	case TextInput:
		return "textinput"
	case Detail:
		return "detail"
	case Error:
		return "error"
	default:
		return "none"
	}
}

// Priority lists the slots from the one that receives keys first.
var Priority = []Type{Error, Help, Confirm, TextInput, Detail}

// RenderOrder draws the highest priority popup last so it ends up on top.
var RenderOrder = reversed(Priority)

func reversed(ts []Type) []Type {
	out := slices.Clone(ts)
	slices.Reverse(out)
	return out
}
