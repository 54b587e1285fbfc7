package ui

import (
	"gridsnake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a player intent collected from keyboard or mouse.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
)

// directionLabels maps movement actions to the labels the game core accepts.
var directionLabels = map[Action]string{
	ActionUp:    "up",
	ActionDown:  "down",
	ActionLeft:  "left",
	ActionRight: "right",
}

// Arrow keys and WASD move, Space pauses, R restarts.
var keyBindings = []struct {
	key    int32
	action Action
}{
	{rl.KeyUp, ActionUp},
	{rl.KeyDown, ActionDown},
	{rl.KeyLeft, ActionLeft},
	{rl.KeyRight, ActionRight},
	{rl.KeyW, ActionUp},
	{rl.KeyS, ActionDown},
	{rl.KeyA, ActionLeft},
	{rl.KeyD, ActionRight},
	{rl.KeySpace, ActionPause},
	{rl.KeyR, ActionRestart},
}

// PollActions returns the actions triggered since the previous frame, keys
// first, then button clicks.
func PollActions(l Layout) []Action {
	var actions []Action
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			actions = append(actions, b.action)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for _, btn := range l.Buttons {
			if rl.CheckCollisionPointRec(mouse, btn.Rect) {
				actions = append(actions, btn.Action)
			}
		}
	}
	return actions
}

// Apply forwards an action to the session.
func Apply(s *session.Session, a Action) {
	switch a {
	case ActionPause:
		s.TogglePause()
	case ActionRestart:
		s.Restart()
	default:
		if label, ok := directionLabels[a]; ok {
			s.Direction(label)
		}
	}
}
