package game

import "github.com/gdamore/tcell/v2"

// Action represents a viewer command.
type Action uint8

const (
	ActionNone Action = iota
	ActionScrollN
	ActionScrollS
	ActionScrollE
	ActionScrollW
	ActionDescend
	ActionAscend
	ActionRecenter
	ActionToggleFOV
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionScrollN
	case tcell.KeyDown:
		return ActionScrollS
	case tcell.KeyRight:
		return ActionScrollE
	case tcell.KeyLeft:
		return ActionScrollW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionScrollN
	case 'j', 'J':
		return ActionScrollS
	case 'l', 'L':
		return ActionScrollE
	case 'h', 'H':
		return ActionScrollW
	case '>':
		return ActionDescend
	case '<':
		return ActionAscend
	case 'c', 'C':
		return ActionRecenter
	case 'f', 'F':
		return ActionToggleFOV
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// scrollStep is how many tiles one scroll key moves the view.
const scrollStep = 4

// actionToDelta converts a scroll action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionScrollN:
		return 0, -scrollStep
	case ActionScrollS:
		return 0, scrollStep
	case ActionScrollE:
		return scrollStep, 0
	case ActionScrollW:
		return -scrollStep, 0
	}
	return 0, 0
}
