// Package question generates arithmetic questions and checks typed answers.
package question

// Difficulty is the base difficulty a game mode asks questions at.
// The generator escalates from the base as the streak of correct answers grows.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyInfinite
)

// String returns the difficulty identifier used in data files.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a data-file identifier into a Difficulty.
// Unknown identifiers map to DifficultyEasy.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	case "infinite":
		return DifficultyInfinite
	default:
		return DifficultyEasy
	}
}

// Tier is the concrete operand range a question was synthesized at.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
	TierInsane
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	case TierInsane:
		return "insane"
	default:
		return "unknown"
	}
}

// Operation is the arithmetic operator of a question.
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as displayed in question text.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Question is a single arithmetic prompt. It is a value; nothing mutates it after generation.
type Question struct {
	Text   string
	Answer float64
	Op     Operation
	A, B   int
	Tier   Tier
}

// IsMultiplication reports whether the question multiplies its operands.
func (q Question) IsMultiplication() bool {
	return q.Op == OpMul
}

// Check reports whether raw is a correct answer to q.
// Unparsable input is simply incorrect.
func (q Question) Check(raw string) bool {
	v, ok := ParseAnswer(raw)
	if !ok {
		return false
	}
	return IsCorrect(v, q.Answer)
}
