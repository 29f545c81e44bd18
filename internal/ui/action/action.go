// Package action is the envelope popups use to report back to the app.
package action

// Action is a result produced by a popup. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action through the bubbletea loop. Source is the popup
// that produced it: "textinput", "confirm" or "helpbindings".
type Msg struct {
	Source string
	Action Action
}
