package question

import (
	"fmt"
	"math"
)

const (
	// maxProduct is the largest multiplication answer the generator aims for.
	maxProduct = 100

	// maxAttempts bounds the regeneration of over-large multiplications.
	// When exhausted, the last question is returned even if its product exceeds maxProduct.
	maxAttempts = 200

	mediumMulRetries = 50
	hardMulRetries   = 200
	insaneMulRetries = 300
)

// Source is the random source questions are drawn from.
// *rand.Rand satisfies it; tests may inject a deterministic one.
type Source interface {
	Intn(n int) int
}

// Generator produces questions whose difficulty escalates with the streak of
// consecutive correct answers.
type Generator struct {
	rng    Source
	streak int
}

// NewGenerator creates a generator drawing from rng with a zero streak.
func NewGenerator(rng Source) *Generator {
	return &Generator{rng: rng}
}

// Streak returns the number of consecutive correct answers recorded.
func (g *Generator) Streak() int {
	return g.streak
}

// RecordAnswer extends the streak on a correct answer and resets it otherwise.
func (g *Generator) RecordAnswer(correct bool) {
	if correct {
		g.streak++
	} else {
		g.streak = 0
	}
}

// ResetProgress restarts the streak. Called whenever a new boss spawns.
func (g *Generator) ResetProgress() {
	g.streak = 0
}

// TierFor maps a base difficulty and the current streak onto a tier.
func (g *Generator) TierFor(base Difficulty) Tier {
	s := g.streak
	switch base {
	case DifficultyEasy:
		switch {
		case s < 3:
			return TierEasy
		case s < 7:
			return TierMedium
		case s < 12:
			return TierHard
		default:
			return TierInsane
		}
	case DifficultyMedium:
		switch {
		case s < 2:
			return TierMedium
		case s < 6:
			return TierHard
		default:
			return TierInsane
		}
	case DifficultyHard:
		if s < 3 {
			return TierHard
		}
		return TierInsane
	case DifficultyInfinite:
		switch {
		case s < 5:
			return TierMedium
		case s < 10:
			return TierHard
		default:
			return TierInsane
		}
	default:
		return TierEasy
	}
}

// Generate returns a question at the tier the streak has reached for base.
// It does not change the streak.
func (g *Generator) Generate(base Difficulty) Question {
	tier := g.TierFor(base)

	var q Question
	for attempt := 1; ; attempt++ {
		q = g.generateTier(tier)
		if !q.IsMultiplication() || math.Abs(q.Answer) <= maxProduct {
			return q
		}
		if attempt >= maxAttempts {
			return q
		}
	}
}

func (g *Generator) generateTier(t Tier) Question {
	switch t {
	case TierMedium:
		return g.generateMedium()
	case TierHard:
		return g.generateHard()
	case TierInsane:
		return g.generateInsane()
	default:
		return g.generateEasy()
	}
}

func (g *Generator) generateEasy() Question {
	a := g.between(1, 20)
	b := g.between(1, 20)
	if g.coin() {
		return newQuestion(TierEasy, OpAdd, a, b)
	}
	return subtraction(TierEasy, a, b)
}

func (g *Generator) generateMedium() Question {
	switch g.rng.Intn(3) {
	case 0:
		return newQuestion(TierMedium, OpAdd, g.between(1, 50), g.between(1, 50))
	case 1:
		return subtraction(TierMedium, g.between(1, 50), g.between(1, 50))
	default:
		a, b := g.between(1, 12), g.between(1, 10)
		for i := 0; a*b > maxProduct && i < mediumMulRetries; i++ {
			a, b = g.between(1, 12), g.between(1, 10)
		}
		return newQuestion(TierMedium, OpMul, a, b)
	}
}

func (g *Generator) generateHard() Question {
	switch g.rng.Intn(3) {
	case 0:
		a, b := g.between(1, 120), g.between(1, 120)
		if g.coin() {
			return newQuestion(TierHard, OpAdd, a, b)
		}
		return subtraction(TierHard, a, b)
	case 1:
		return g.division(TierHard, 12, 12)
	default:
		return g.boundedMultiplication(TierHard, 12, 12, hardMulRetries, 10, 10)
	}
}

func (g *Generator) generateInsane() Question {
	switch g.rng.Intn(3) {
	case 0:
		return newQuestion(TierInsane, OpAdd, g.between(1, 200), g.between(1, 200))
	case 1:
		return g.division(TierInsane, 15, 20)
	default:
		return g.boundedMultiplication(TierInsane, 15, 12, insaneMulRetries, 12, 10)
	}
}

// division builds an exact division from a divisor and quotient so the answer is integral.
func (g *Generator) division(t Tier, maxDivisor, maxQuotient int) Question {
	d := g.between(1, maxDivisor)
	q := g.between(1, maxQuotient)
	return newQuestion(t, OpDiv, q*d, d)
}

// boundedMultiplication draws factors until the product fits maxProduct. After
// retries failed draws it falls back to an unconstrained small multiplication.
func (g *Generator) boundedMultiplication(t Tier, maxA, maxB, retries, fallbackA, fallbackB int) Question {
	for i := 0; i < retries; i++ {
		a, b := g.between(1, maxA), g.between(1, maxB)
		if a*b <= maxProduct {
			return newQuestion(t, OpMul, a, b)
		}
	}
	return newQuestion(t, OpMul, g.between(1, fallbackA), g.between(1, fallbackB))
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) coin() bool {
	return g.rng.Intn(2) == 0
}

// subtraction orders the operands so the result is never negative.
func subtraction(t Tier, a, b int) Question {
	if a < b {
		a, b = b, a
	}
	return newQuestion(t, OpSub, a, b)
}

func newQuestion(t Tier, op Operation, a, b int) Question {
	var answer int
	switch op {
	case OpAdd:
		answer = a + b
	case OpSub:
		answer = a - b
	case OpMul:
		answer = a * b
	case OpDiv:
		answer = a / b
	}
	return Question{
		Text:   fmt.Sprintf("%d %s %d ?", a, op.Symbol(), b),
		Answer: float64(answer),
		Op:     op,
		A:      a,
		B:      b,
		Tier:   t,
	}
}
