package textinput

import "github.com/llehouerou/encore/internal/ui/action"

// Result is the submitted text, or Canceled when the prompt was dismissed
// with Escape. Context is whatever was passed to Start.
type Result struct {
	Text     string
	Context  any
	Canceled bool
}

func (Result) ActionType() string { return "textinput.result" }

func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
