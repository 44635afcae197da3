package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/safemath/internal/match"
)

const barWidth = 30

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAttack = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDefend = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBoss   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMenu draws the mode selection menu with cursor on the highlighted mode.
func (r *Renderer) RenderMenu(modes []match.Mode, cursor int) {
	r.screen.Clear()

	r.screen.DrawText(2, 1, "SAFEMATH", styleTitle)
	r.screen.DrawText(2, 2, "Answer to attack, answer to defend.", styleDim)

	for i, mode := range modes {
		style := styleText
		prefix := "   "
		if i == cursor {
			style = styleTitle
			prefix = " > "
		}
		r.screen.DrawText(2, 4+i, fmt.Sprintf("%s%d. %s", prefix, i+1, strings.ToUpper(mode.String())), style)
	}

	r.screen.DrawText(2, 5+len(modes), "Up/Down or 1-3 to choose, Enter to start, q to quit", styleDim)
	r.screen.Show()
}

// RenderBattle draws the active match, the answer being typed and the feedback
// from the last turn.
func (r *Renderer) RenderBattle(m *match.Match, input, message string) {
	r.screen.Clear()

	x := r.screen.DrawText(1, 0, "SafeMath - "+m.Mode().String(), styleTitle)
	if m.IsPlayerTurn() {
		x = r.screen.DrawText(x+3, 0, "ATTACK", styleAttack)
	} else {
		x = r.screen.DrawText(x+3, 0, "DEFENSE", styleDefend)
	}
	if m.Phase() == match.PhasePaused {
		x = r.screen.DrawText(x+2, 0, "(paused)", styleDim)
	}
	r.screen.DrawText(x+3, 0, fmt.Sprintf("streak %d", m.Streak()), styleDim)

	boss := m.Boss()
	r.screen.DrawText(1, 2, fmt.Sprintf("%-8s %s %d/%d  #%d", boss.Name, HealthBar(m.BossHealthFraction(), barWidth), boss.HP, boss.MaxHP, m.BossArt()), styleBoss)
	player := m.Player()
	r.screen.DrawText(1, 3, fmt.Sprintf("%-8s %s %d/%d", "You", HealthBar(m.PlayerHealthFraction(), barWidth), player.HP, player.MaxHP), stylePlayer)

	r.screen.DrawText(1, 5, m.Question().Text, styleTitle)
	r.screen.DrawText(1, 6, "> "+input+"_", styleText)
	r.screen.DrawText(1, 8, message, styleText)

	r.renderCompanions(m, 10)

	r.screen.DrawText(1, 17, "Enter answer | Left/Right or F1-F5 companion | p pause | Esc menu", styleDim)
	r.screen.Show()
}

// renderCompanions draws one card per roster entry: locked companions are dimmed,
// cooling ones show their remaining cooldown, the selected one is marked.
func (r *Renderer) renderCompanions(m *match.Match, y int) {
	r.screen.DrawText(1, y, "Companions", styleText)

	available := len(m.Available())
	for i, c := range m.Roster() {
		row := y + 1 + i
		if i >= available {
			r.screen.DrawText(1, row, fmt.Sprintf("  F%d  ????????  locked", i+1), styleDim)
			continue
		}

		marker := "  "
		if i == m.SelectedIndex() {
			marker = "> "
		}
		style := tcell.StyleDefault.Foreground(c.Color())
		if !c.CanAttack() {
			style = styleDim
		}

		x := r.screen.DrawText(1, row, fmt.Sprintf("%sF%d ", marker, i+1), styleText)
		r.screen.SetContent(x, row, c.Symbol, style)
		x = r.screen.DrawText(x+2, row, fmt.Sprintf("%-8s force %2d", c.Name, c.Force), style)
		if c.Cooldown > 0 {
			r.screen.DrawText(x+2, row, fmt.Sprintf("cooldown %d", c.Cooldown), styleDefend)
		}
	}
}

// RenderResult draws the end-of-match screen.
func (r *Renderer) RenderResult(m *match.Match, message string) {
	r.screen.Clear()

	switch m.Phase() {
	case match.PhaseModeCleared:
		r.screen.DrawText(2, 2, "VICTORY!", styleAttack)
	default:
		r.screen.DrawText(2, 2, "DEFEATED", styleDefend)
	}
	r.screen.DrawText(2, 4, message, styleText)
	r.screen.DrawText(2, 5, fmt.Sprintf("Bosses defeated: %d   Turns: %d", m.BossesDefeated(), m.TurnCount()), styleText)
	r.screen.DrawText(2, 7, "Press Enter to return to the menu", styleDim)
	r.screen.Show()
}

// HealthBar renders fraction as a bar of width cells, e.g. "[#####.....]".
func HealthBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if fraction > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
