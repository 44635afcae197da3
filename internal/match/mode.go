package match

import (
	"fmt"
	"strings"
)

// Mode is the closed set of ways a match can be played.
type Mode int

const (
	// ModeMath unlocks one companion per boss; clearing the last companion's boss wins.
	ModeMath Mode = iota
	// ModeArcade fights a fixed series of increasingly strong bosses.
	ModeArcade
	// ModeInfinite respawns the boss forever; only defeat ends it.
	ModeInfinite
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMath:
		return "Math"
	case ModeArcade:
		return "Arcade"
	case ModeInfinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}

// ID returns the mode identifier for data lookup.
func (m Mode) ID() string {
	switch m {
	case ModeMath:
		return "math"
	case ModeArcade:
		return "arcade"
	case ModeInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeMath, ModeArcade, ModeInfinite}
}

// ParseMode accepts a mode ID or name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if s == m.ID() {
			return m, nil
		}
	}
	return ModeMath, fmt.Errorf("unknown mode %q", s)
}
