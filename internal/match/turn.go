package match

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/safemath/internal/combat"
	"github.com/samdwyer/safemath/internal/question"
	"github.com/samdwyer/safemath/internal/telemetry"
)

// TurnResult describes everything one answer changed, so the presentation layer
// can render it without inspecting match internals.
type TurnResult struct {
	Turn     Turn
	Question question.Question // The question that was answered
	Correct  bool
	Streak   int // Streak after recording this answer

	// Attack turns
	Companion  string
	OnCooldown bool
	BossDamage int

	// Defense turns
	DefenseRoll    int
	PlayerDamage   int
	PerfectDefense bool

	BossDefeated bool
	Unlocked     string // Companion unlocked by this boss defeat (Math mode)

	Phase   Phase             // Phase after the turn
	Next    question.Question // Question for the next turn; zero when the match ended
	Message string
}

// SubmitAnswer resolves raw as the answer to the current question. Malformed
// input counts as a wrong answer. Errors are only returned for answers submitted
// to a paused or finished match.
func (m *Match) SubmitAnswer(ctx context.Context, raw string) (TurnResult, error) {
	switch {
	case m.phase == PhasePaused:
		return TurnResult{}, ErrPaused
	case m.phase.IsTerminal():
		return TurnResult{}, ErrMatchOver
	}

	tracer := telemetry.Tracer("match")
	ctx, span := tracer.Start(ctx, "match.turn")
	defer span.End()

	q := m.current
	correct := q.Check(raw)
	m.questions.RecordAnswer(correct)
	m.turnCount++

	res := TurnResult{
		Question: q,
		Correct:  correct,
		Streak:   m.questions.Streak(),
	}

	if m.phase == PhasePlayerTurn {
		res.Turn = TurnAttack
		m.resolveAttack(ctx, &res)
	} else {
		res.Turn = TurnDefense
		m.resolveDefense(ctx, &res)
	}

	res.Phase = m.phase
	if !m.phase.IsTerminal() {
		res.Next = m.current
	}

	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("mode", m.mode.ID()),
		attribute.String("turn", res.Turn.String()),
		attribute.Bool("correct", correct),
		attribute.String("tier", q.Tier.String()),
		attribute.Int("streak", res.Streak),
		attribute.Int("turn_number", m.turnCount),
		attribute.String("phase", m.phase.String()),
	)
	if res.BossDamage > 0 {
		span.SetAttributes(attribute.Int("boss_damage", res.BossDamage))
	}
	if res.Turn == TurnDefense {
		span.SetAttributes(
			attribute.Int("defense_roll", res.DefenseRoll),
			attribute.Int("player_damage", res.PlayerDamage),
		)
	}
	if res.BossDefeated {
		span.SetAttributes(attribute.Bool("boss_defeated", true))
	}

	return res, nil
}

// resolveAttack runs a player turn: gate on cooldown, deal damage, tick every
// companion's cooldown, then either progress past a dead boss or hand over to defense.
func (m *Match) resolveAttack(ctx context.Context, res *TurnResult) {
	acting := m.roster[m.selected]
	res.Companion = acting.Name

	attack := m.resolver.ResolveAttack(acting, m.boss, res.Correct)
	res.OnCooldown = attack.OnCooldown
	res.BossDamage = attack.Damage
	res.Message = attack.Message
	if !res.Correct && !attack.OnCooldown {
		res.Message += " The answer was " + question.FormatAnswer(res.Question.Answer) + "."
	}

	// The tick runs before the attacker's fresh cooldown is set, so the attacker
	// keeps its full cooldown for the following turns.
	m.tickCooldowns()
	if attack.Attacked {
		acting.SetCooldown(combat.CooldownFor(acting.Force))
		m.locked = m.selected
	}
	m.releaseLocked()
	m.ensureSelection()

	if attack.TargetKilled {
		res.BossDefeated = true
		m.advance(ctx, res)
		return
	}

	m.phase = PhaseDefenseTurn
	m.current = m.questions.Generate(m.Difficulty())
}

// resolveDefense runs a defense turn: roll the boss's strike and apply it unless
// the answer was correct.
func (m *Match) resolveDefense(ctx context.Context, res *TurnResult) {
	roll := combat.RollDamage(m.dice, m.def.MaxDefenseDamage(m.arcadeStage))
	defense := m.resolver.ResolveDefense(m.player, roll, res.Correct)

	res.DefenseRoll = defense.Roll
	res.PlayerDamage = defense.Damage
	res.PerfectDefense = defense.Perfect
	res.Message = defense.Message
	if !res.Correct {
		res.Message += " The answer was " + question.FormatAnswer(res.Question.Answer) + "."
	}

	if defense.Killed {
		res.Message = "Defeated!"
		m.finish(ctx, PhasePlayerDefeated)
		return
	}

	m.phase = PhasePlayerTurn
	m.current = m.questions.Generate(m.Difficulty())
}

// advance applies mode progression after a boss defeat. The player keeps the
// turn; SpawnBoss issues a new question so the killing question is not repeated.
func (m *Match) advance(ctx context.Context, res *TurnResult) {
	m.bossesDefeated++

	switch m.mode {
	case ModeMath:
		if m.unlocked < len(m.roster)-1 {
			m.unlocked++
			res.Unlocked = m.roster[m.unlocked].Name
			res.Message = "New companion unlocked: " + res.Unlocked
			m.SpawnBoss(ctx)
			return
		}
	case ModeArcade:
		m.arcadeStage++
		if m.arcadeStage < m.def.Stages() {
			res.Message = "You defeated the boss!"
			m.SpawnBoss(ctx)
			return
		}
	default:
		res.Message = "The boss returns!"
		m.SpawnBoss(ctx)
		return
	}

	res.Message = "Victory! " + m.mode.String() + " mode cleared!"
	m.finish(ctx, PhaseModeCleared)
}

// tickCooldowns is the single global cooldown tick, run once per player turn.
func (m *Match) tickCooldowns() {
	for _, c := range m.roster {
		c.TickCooldown()
	}
}
