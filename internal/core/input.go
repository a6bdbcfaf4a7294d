package core

import "fmt"

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A - move one cell left
	ActionRight             // D - move one cell right
	ActionJump              // W - jump in place
	ActionRestart           // R - reset the round
	ActionScreenshot        // Ctrl+S - save the current frame
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveCode returns the movement code forwarded for this action.
// The second value is false for actions that are not movement.
func (a Action) MoveCode() (MoveCode, bool) {
	switch a {
	case ActionLeft:
		return MoveLeft, true
	case ActionRight:
		return MoveRight, true
	case ActionJump:
		return MoveJump, true
	default:
		return "", false
	}
}

// MoveCode is the single-character movement command shared by the
// controller and the device it notifies.
type MoveCode string

const (
	MoveLeft  MoveCode = "l"
	MoveRight MoveCode = "r"
	MoveJump  MoveCode = "w"
)

// ParseMoveCode validates a raw movement code.
func ParseMoveCode(s string) (MoveCode, error) {
	switch c := MoveCode(s); c {
	case MoveLeft, MoveRight, MoveJump:
		return c, nil
	default:
		return "", fmt.Errorf("invalid move code %q", s)
	}
}
