package textinput

import "github.com/llehouerou/spotterm/internal/ui/action"

// Source names the component in action.Msg.
const Source = "textinput"

// Result is emitted when the input is confirmed or canceled.
type Result struct {
	Text     string
	Context  any  // passed through from Start
	Canceled bool // true when escape closed the input
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }

// Changed is emitted after each edit, for incremental filtering.
type Changed struct {
	Text    string
	Context any
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "textinput.changed" }

// ActionMsg wraps a textinput action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
