package match

import (
	"testing"

	"github.com/samdwyer/safemath/internal/entity"
)

func testRoster(cooldowns ...int) []*entity.Companion {
	names := []string{"Rabbit", "Cat", "Dog", "Lion", "Tiger"}
	out := make([]*entity.Companion, len(cooldowns))
	for i, cd := range cooldowns {
		out[i] = entity.NewCompanion(names[i], (i+1)*10)
		out[i].Cooldown = cd
	}
	return out
}

func TestPickFallback(t *testing.T) {
	tests := []struct {
		name      string
		cooldowns []int
		from      int // index into available, -1 for a companion outside it
		current   int // index into available, -1 for nil
		want      int // index into available, -1 for nil
	}{
		{"previous ready", []int{0, 0, 2}, 2, 0, 1},
		{"nearest previous wins", []int{0, 0, 0, 3}, 3, 0, 2},
		{"skips cooling previous", []int{0, 1, 2}, 2, 0, 0},
		{"forward when none before", []int{2, 1, 0}, 0, 0, 2},
		{"nearest forward wins", []int{3, 0, 0}, 0, 2, 1},
		{"all cooling returns current", []int{1, 2, 3}, 1, 2, 2},
		{"all cooling nil current returns first", []int{1, 2}, 1, -1, 0},
		{"from missing returns current", []int{0, 0}, -1, 1, 1},
		{"from missing nil current returns first", []int{0, 0}, -1, -1, 0},
	}

	for _, tt := range tests {
		available := testRoster(tt.cooldowns...)

		from := entity.NewCompanion("Stranger", 99)
		if tt.from >= 0 {
			from = available[tt.from]
		}
		var current *entity.Companion
		if tt.current >= 0 {
			current = available[tt.current]
		}

		got := PickFallback(available, from, current)

		var want *entity.Companion
		if tt.want >= 0 {
			want = available[tt.want]
		}
		if got != want {
			t.Errorf("%s: PickFallback() = %s, want %s", tt.name, nameOf(got), nameOf(want))
		}
	}
}

func nameOf(c *entity.Companion) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

func TestPickFallbackEmpty(t *testing.T) {
	if got := PickFallback(nil, nil, nil); got != nil {
		t.Errorf("PickFallback(empty) = %v, want nil", got)
	}
}

func TestAvailableMathPrefix(t *testing.T) {
	m := newTestMatch(t, ModeMath, 41)
	m.unlocked = 2

	available := m.Available()
	if len(available) != 3 {
		t.Fatalf("len(Available()) = %d, want 3", len(available))
	}
	for i, c := range available {
		if c != m.roster[i] {
			t.Errorf("Available()[%d] = %s, want %s", i, c.Name, m.roster[i].Name)
		}
	}
}

func TestModeParse(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		ok    bool
	}{
		{"math", ModeMath, true},
		{"Arcade", ModeArcade, true},
		{" INFINITE ", ModeInfinite, true},
		{"story", ModeMath, false},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, ok=%v)", tt.input, got, err, tt.want, tt.ok)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
		terminal bool
	}{
		{PhasePlayerTurn, "player_turn", false},
		{PhaseDefenseTurn, "defense_turn", false},
		{PhasePaused, "paused", false},
		{PhasePlayerDefeated, "player_defeated", true},
		{PhaseModeCleared, "mode_cleared", true},
		{Phase(99), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
		if got := tt.phase.IsTerminal(); got != tt.terminal {
			t.Errorf("Phase(%d).IsTerminal() = %v, want %v", tt.phase, got, tt.terminal)
		}
	}
}
