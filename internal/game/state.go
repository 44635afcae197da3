// Package game runs the terminal front-end: mode menu, battle and result screens.
package game

// State represents the current screen of the application.
type State int

const (
	// StateMenu is the mode selection menu.
	StateMenu State = iota
	// StateBattle is an active match accepting typed answers.
	StateBattle
	// StateResult shows the outcome of a finished match.
	StateResult
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateBattle:
		return "battle"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}
