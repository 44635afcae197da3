package match

// Phase represents where a match is in its turn cycle.
type Phase int

const (
	// PhasePlayerTurn - waiting for an answer that lets the selected companion attack
	PhasePlayerTurn Phase = iota
	// PhaseDefenseTurn - waiting for an answer that blocks the boss's strike
	PhaseDefenseTurn
	// PhasePaused - answers are refused until the match resumes
	PhasePaused
	// PhasePlayerDefeated - the player's health reached 0
	PhasePlayerDefeated
	// PhaseModeCleared - the last boss of the mode was defeated
	PhaseModeCleared
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDefenseTurn:
		return "defense_turn"
	case PhasePaused:
		return "paused"
	case PhasePlayerDefeated:
		return "player_defeated"
	case PhaseModeCleared:
		return "mode_cleared"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the match has ended.
func (p Phase) IsTerminal() bool {
	return p == PhasePlayerDefeated || p == PhaseModeCleared
}

// Turn identifies which kind of answer a question was asked for.
type Turn int

const (
	TurnAttack Turn = iota
	TurnDefense
)

// String returns a human-readable turn name.
func (t Turn) String() string {
	switch t {
	case TurnAttack:
		return "attack"
	case TurnDefense:
		return "defense"
	default:
		return "unknown"
	}
}
