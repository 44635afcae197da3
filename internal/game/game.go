package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/safemath/internal/match"
	"github.com/samdwyer/safemath/internal/telemetry"
	"github.com/samdwyer/safemath/internal/ui"
)

// maxInputLen bounds the typed answer.
const maxInputLen = 12

// Game holds the application state around the active match.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	rng      *rand.Rand

	state   State
	cursor  int
	match   *match.Match
	input   string
	message string
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg), nil
}

func newGame(screen *ui.Screen, cfg Config) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		state:    StateMenu,
		running:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("seed", g.cfg.Seed),
		attribute.Bool("mode.preselected", g.cfg.HasMode),
	)
	if g.cfg.HasMode {
		g.startMatch(ctx, g.cfg.Mode)
	}
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Match returns the active or just finished match, nil on the menu.
func (g *Game) Match() *match.Match { return g.match }

func (g *Game) render() {
	switch g.state {
	case StateMenu:
		g.renderer.RenderMenu(match.Modes(), g.cursor)
	case StateBattle:
		g.renderer.RenderBattle(g.match, g.input, g.message)
	case StateResult:
		g.renderer.RenderResult(g.match, g.message)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent dispatches keyboard input to the current screen.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.state {
	case StateMenu:
		g.handleMenuKey(ctx, ev)
	case StateBattle:
		g.handleBattleKey(ctx, ev)
	case StateResult:
		if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape {
			g.backToMenu()
		}
	}
}

func (g *Game) handleMenuKey(ctx context.Context, ev *tcell.EventKey) {
	modes := match.Modes()

	switch ev.Key() {
	case tcell.KeyEscape:
		g.running = false
	case tcell.KeyUp:
		g.cursor = (g.cursor + len(modes) - 1) % len(modes)
	case tcell.KeyDown:
		g.cursor = (g.cursor + 1) % len(modes)
	case tcell.KeyEnter:
		g.startMatch(ctx, modes[g.cursor])
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			g.running = false
		case r >= '1' && int(r-'1') < len(modes):
			g.cursor = int(r - '1')
			g.startMatch(ctx, modes[g.cursor])
		}
	}
}

func (g *Game) handleBattleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.backToMenu()
	case tcell.KeyEnter:
		g.submit(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(g.input); n > 0 {
			g.input = g.input[:n-1]
		}
	case tcell.KeyLeft:
		g.cycleCompanion(-1)
	case tcell.KeyRight:
		g.cycleCompanion(1)
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5:
		g.selectCompanion(int(ev.Key() - tcell.KeyF1))
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'p' || r == 'P':
			g.togglePause()
		case (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-':
			if len(g.input) < maxInputLen {
				g.input += string(r)
			}
		}
	}
}

// startMatch begins a new match in mode, staying on the menu if it cannot start.
func (g *Game) startMatch(ctx context.Context, mode match.Mode) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.mode_select")
	defer span.End()
	span.SetAttributes(attribute.String("mode", mode.ID()))

	m, err := match.New(ctx, mode, g.rng)
	if err != nil {
		log.Printf("Failed to start %s mode: %v", mode, err)
		span.RecordError(err)
		g.message = err.Error()
		return
	}

	span.SetAttributes(attribute.String("match.id", m.ID))
	g.match = m
	g.state = StateBattle
	g.input = ""
	g.message = fmt.Sprintf("%s appears!", m.Boss().Name)
}

func (g *Game) submit(ctx context.Context) {
	if g.input == "" {
		return
	}

	res, err := g.match.SubmitAnswer(ctx, g.input)
	switch {
	case errors.Is(err, match.ErrPaused):
		g.message = "Paused. Press p to resume."
		return
	case err != nil:
		g.message = err.Error()
		return
	}

	g.input = ""
	g.message = res.Message
	if g.match.IsOver() {
		g.state = StateResult
	}
}

func (g *Game) selectCompanion(index int) {
	switch err := g.match.Select(index); {
	case errors.Is(err, match.ErrCompanionCooling):
		g.message = fmt.Sprintf("%s is on cooldown.", g.match.Roster()[index].Name)
	case err != nil:
		g.message = "That companion is not available yet."
	}
}

// cycleCompanion moves the selection to the next ready companion in direction step.
func (g *Game) cycleCompanion(step int) {
	n := len(g.match.Available())
	from := g.match.SelectedIndex()
	for i := 1; i < n; i++ {
		index := ((from+step*i)%n + n) % n
		if g.match.Select(index) == nil {
			return
		}
	}
}

func (g *Game) togglePause() {
	if g.match.Phase() == match.PhasePaused {
		g.match.Resume()
		g.message = ""
		return
	}
	g.match.Pause()
	g.message = "Paused. Press p to resume."
}

// backToMenu discards the match and shows the mode menu.
func (g *Game) backToMenu() {
	g.match = nil
	g.state = StateMenu
	g.input = ""
	g.message = ""
}
