package confirm

import "github.com/llehouerou/spotterm/internal/ui/action"

// Result contains the confirmation dialog result.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }

// ActionMsg creates an action.Msg for a confirm action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
