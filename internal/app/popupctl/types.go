package popupctl

// Type identifies a popup slot.
type Type int

const (
	None Type = iota
	Help
	TextInput
	Actions
	Confirm
	Error
)

// Priority defines which popup receives keys (highest first).
var Priority = []Type{
	Error,
	Confirm,
	Help,
	Actions,
	TextInput,
}

// RenderOrder defines the order popups are drawn (bottom to top).
var RenderOrder = []Type{
	TextInput,
	Actions,
	Help,
	Confirm,
	Error,
}

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case TextInput:
		return "textinput"
	case Actions:
		return "actions"
	case Confirm:
		return "confirm"
	case Error:
		return "error"
	case None:
	}
	return "none"
}
