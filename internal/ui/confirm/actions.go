package confirm

import "github.com/llehouerou/encore/internal/ui/action"

// Result is the answer to a confirmation. Context is whatever was passed
// to Show, handed back untouched.
type Result struct {
	Confirmed bool
	Context   any
}

func (Result) ActionType() string { return "confirm.result" }

func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
