package ui

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/safemath/internal/match"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)
	return screen, sim
}

// row reads one line of the simulation screen back as text.
func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(sim tcell.SimulationScreen) string {
	_, h := sim.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = row(sim, y)
	}
	return strings.Join(lines, "\n")
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		fraction float64
		width    int
		expected string
	}{
		{1, 4, "[####]"},
		{0, 4, "[....]"},
		{0.5, 4, "[##..]"},
		{0.01, 4, "[#...]"},
		{-1, 2, "[..]"},
		{2, 2, "[##]"},
	}

	for _, tt := range tests {
		if got := HealthBar(tt.fraction, tt.width); got != tt.expected {
			t.Errorf("HealthBar(%v, %d) = %q, want %q", tt.fraction, tt.width, got, tt.expected)
		}
	}
}

func TestDrawText(t *testing.T) {
	screen, sim := newTestScreen(t)

	next := screen.DrawText(3, 1, "abc", tcell.StyleDefault)
	if next != 6 {
		t.Errorf("DrawText() = %d, want 6", next)
	}
	if got := row(sim, 1); got != "   abc" {
		t.Errorf("row 1 = %q, want %q", got, "   abc")
	}
}

func TestRenderMenu(t *testing.T) {
	screen, sim := newTestScreen(t)

	NewRenderer(screen).RenderMenu(match.Modes(), 1)

	text := screenText(sim)
	for _, want := range []string{"SAFEMATH", "1. MATH", " > 2. ARCADE", "3. INFINITE"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu missing %q:\n%s", want, text)
		}
	}
}

func TestRenderBattle(t *testing.T) {
	screen, sim := newTestScreen(t)
	m, err := match.New(context.Background(), match.ModeMath, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("match.New() error = %v", err)
	}

	NewRenderer(screen).RenderBattle(m, "12", "Hello")

	text := screenText(sim)
	for _, want := range []string{"ATTACK", m.Question().Text, "> 12_", "Hello", "Rabbit", "locked", "30/30"} {
		if !strings.Contains(text, want) {
			t.Errorf("battle screen missing %q:\n%s", want, text)
		}
	}
}

func TestRenderBattlePaused(t *testing.T) {
	screen, sim := newTestScreen(t)
	m, err := match.New(context.Background(), match.ModeArcade, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("match.New() error = %v", err)
	}
	m.Pause()

	NewRenderer(screen).RenderBattle(m, "", "")

	if got := row(sim, 0); !strings.Contains(got, "ATTACK") || !strings.Contains(got, "(paused)") {
		t.Errorf("header = %q, want ATTACK and (paused)", got)
	}
	if text := screenText(sim); strings.Contains(text, "locked") {
		t.Errorf("arcade roster should have no locked companions:\n%s", text)
	}
}
