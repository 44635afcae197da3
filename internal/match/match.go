// Package match implements the combat state machine of a single play-through:
// boss spawning, attack and defense turns, companion cooldowns and mode progression.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/safemath/internal/combat"
	"github.com/samdwyer/safemath/internal/entity"
	"github.com/samdwyer/safemath/internal/gamedata"
	"github.com/samdwyer/safemath/internal/question"
	"github.com/samdwyer/safemath/internal/telemetry"
)

var (
	// ErrMatchOver is returned when acting on a match that reached a terminal phase.
	ErrMatchOver = errors.New("match is over")
	// ErrPaused is returned when submitting an answer to a paused match.
	ErrPaused = errors.New("match is paused")
	// ErrCompanionLocked is returned when selecting a companion that is not available.
	ErrCompanionLocked = errors.New("companion is not unlocked")
	// ErrCompanionCooling is returned when selecting a companion that is on cooldown.
	ErrCompanionCooling = errors.New("companion is on cooldown")
)

// Match owns every entity of one play-through. It is not safe for concurrent use;
// the presentation layer drives it from a single goroutine.
type Match struct {
	ID string

	mode Mode
	def  *gamedata.ModeDef

	roster      []*entity.Companion
	unlocked    int // Math mode progress: highest unlocked roster index
	selected    int // Roster index of the companion that acts on the next attack
	locked      int // Roster index displaced by its own cooldown, -1 if none
	arcadeStage int

	boss   *entity.Boss
	player *entity.Player

	questions *question.Generator
	current   question.Question
	dice      question.Source
	resolver  *combat.Resolver

	phase       Phase
	resumePhase Phase

	turnCount      int
	bossesDefeated int
}

// New starts a match in the given mode. rng drives both question generation and
// the boss's damage rolls; pass a seeded source for reproducible matches.
func New(ctx context.Context, mode Mode, rng question.Source) (*Match, error) {
	companions, err := gamedata.LoadCompanions()
	if err != nil {
		return nil, fmt.Errorf("load companions: %w", err)
	}
	modes, err := gamedata.LoadModeRegistry()
	if err != nil {
		return nil, fmt.Errorf("load modes: %w", err)
	}
	def, err := modes.Lookup(mode.ID())
	if err != nil {
		return nil, fmt.Errorf("mode %s: %w", mode, err)
	}

	return newMatch(ctx, mode, def, entity.NewRoster(companions), rng), nil
}

func newMatch(ctx context.Context, mode Mode, def *gamedata.ModeDef, roster []*entity.Companion, rng question.Source) *Match {
	tracer := telemetry.Tracer("match")
	ctx, span := tracer.Start(ctx, "match.start")
	defer span.End()

	m := &Match{
		ID:        uuid.NewString(),
		mode:      mode,
		def:       def,
		roster:    roster,
		locked:    -1,
		player:    entity.NewPlayer(entity.DefaultPlayerHP),
		questions: question.NewGenerator(rng),
		dice:      rng,
		resolver:  combat.NewResolver(),
	}

	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("mode", mode.ID()),
		attribute.Int("roster_size", len(roster)),
		attribute.Int("player_hp", m.player.MaxHP),
	)

	m.SpawnBoss(ctx)
	return m
}

// SpawnBoss replaces the active boss according to the mode's health rule, restarts
// the question streak and hands the turn to the player with a fresh question.
// A companion unlocked by the previous kill takes part in the fallback selection.
func (m *Match) SpawnBoss(ctx context.Context) {
	tracer := telemetry.Tracer("match")
	_, span := tracer.Start(ctx, "match.boss_spawn")
	defer span.End()

	m.boss = entity.NewBoss(m.def.BossName, m.bossHealth(), m.BossArt())
	m.questions.ResetProgress()
	m.phase = PhasePlayerTurn
	m.current = m.questions.Generate(m.Difficulty())
	m.ensureSelection()

	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("mode", m.mode.ID()),
		attribute.Int("boss.max_hp", m.boss.MaxHP),
		attribute.Int("boss.art", m.boss.ArtIndex),
		attribute.Int("unlocked", m.unlocked),
		attribute.Int("arcade_stage", m.arcadeStage),
	)
}

// bossHealth applies whichever health rule the mode definition carries.
func (m *Match) bossHealth() int {
	switch {
	case m.def.HealthPerForce > 0:
		return m.roster[m.unlocked].Force * m.def.HealthPerForce
	case m.def.Stages() > 0:
		return m.def.HealthForStage(m.arcadeStage)
	default:
		return m.def.FixedHealth
	}
}

// BossArt returns the 1-based boss art index the presentation layer shows:
// the unlocked companion's position in Math, stage+1 in Arcade, always 1 in Infinite.
func (m *Match) BossArt() int {
	idx := 1
	switch m.mode {
	case ModeMath:
		idx = m.unlocked + 1
	case ModeArcade:
		idx = m.arcadeStage + 1
	}
	if idx < 1 {
		idx = 1
	}
	if idx > m.def.BossArtCount {
		idx = m.def.BossArtCount
	}
	return idx
}

// Difficulty returns the base difficulty questions are generated at for this mode.
func (m *Match) Difficulty() question.Difficulty {
	return question.ParseDifficulty(m.def.Difficulty)
}

// Question returns the question currently awaiting an answer.
func (m *Match) Question() question.Question {
	return m.current
}

// NextQuestion discards the current question and generates a new one.
func (m *Match) NextQuestion() question.Question {
	m.current = m.questions.Generate(m.Difficulty())
	return m.current
}

// Pause freezes an active match.
func (m *Match) Pause() {
	if m.phase == PhasePlayerTurn || m.phase == PhaseDefenseTurn {
		m.resumePhase = m.phase
		m.phase = PhasePaused
	}
}

// Resume continues a paused match in the turn it was paused in.
func (m *Match) Resume() {
	if m.phase == PhasePaused {
		m.phase = m.resumePhase
	}
}

// finish moves the match into a terminal phase.
func (m *Match) finish(ctx context.Context, phase Phase) {
	m.phase = phase

	tracer := telemetry.Tracer("match")
	_, span := tracer.Start(ctx, "match.end")
	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("mode", m.mode.ID()),
		attribute.String("outcome", phase.String()),
		attribute.Int("turns_taken", m.turnCount),
		attribute.Int("bosses_defeated", m.bossesDefeated),
		attribute.Int("player_hp_remaining", m.player.HP),
	)
	span.End()
}

// Mode returns the match mode.
func (m *Match) Mode() Mode { return m.mode }

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// IsOver reports whether the match reached a terminal phase.
func (m *Match) IsOver() bool { return m.phase.IsTerminal() }

// IsPlayerTurn reports whether the next answer is an attack.
func (m *Match) IsPlayerTurn() bool {
	if m.phase == PhasePaused {
		return m.resumePhase == PhasePlayerTurn
	}
	return m.phase == PhasePlayerTurn
}

// Boss returns the active boss.
func (m *Match) Boss() *entity.Boss { return m.boss }

// Player returns the player.
func (m *Match) Player() *entity.Player { return m.player }

// Roster returns the full ordered companion roster.
func (m *Match) Roster() []*entity.Companion {
	return append([]*entity.Companion(nil), m.roster...)
}

// Unlocked returns the roster index of the Math mode progress companion.
func (m *Match) Unlocked() int { return m.unlocked }

// ArcadeStage returns the number of Arcade bosses defeated so far.
func (m *Match) ArcadeStage() int { return m.arcadeStage }

// Streak returns the current run of correct answers.
func (m *Match) Streak() int { return m.questions.Streak() }

// TurnCount returns the number of answers resolved.
func (m *Match) TurnCount() int { return m.turnCount }

// BossesDefeated returns the number of bosses killed in this match.
func (m *Match) BossesDefeated() int { return m.bossesDefeated }

// BossHealthFraction returns the boss health bar value in [0, 1].
func (m *Match) BossHealthFraction() float64 { return m.boss.HealthFraction() }

// PlayerHealthFraction returns the player health bar value in [0, 1].
func (m *Match) PlayerHealthFraction() float64 { return m.player.HealthFraction() }
