package actionmenu

import (
	"github.com/llehouerou/spotterm/internal/catalog"
	"github.com/llehouerou/spotterm/internal/ui/action"
)

// Source names the component in action.Msg.
const Source = "actionmenu"

// Selected is emitted when the user picks an action for Item.
type Selected struct {
	Action catalog.Action
	Item   catalog.Item
}

// ActionType implements action.Action.
func (Selected) ActionType() string { return "actionmenu.selected" }

// Close is emitted when the menu is dismissed without a choice.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "actionmenu.close" }

// ActionMsg wraps an actionmenu action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
