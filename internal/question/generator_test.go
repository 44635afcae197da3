package question

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

// maxSource always returns the largest value allowed, counting calls.
type maxSource struct {
	calls int
}

func (s *maxSource) Intn(n int) int {
	s.calls++
	return n - 1
}

func TestTierForThresholds(t *testing.T) {
	tests := []struct {
		base   Difficulty
		streak int
		want   Tier
	}{
		{DifficultyEasy, 0, TierEasy},
		{DifficultyEasy, 2, TierEasy},
		{DifficultyEasy, 3, TierMedium},
		{DifficultyEasy, 6, TierMedium},
		{DifficultyEasy, 7, TierHard},
		{DifficultyEasy, 11, TierHard},
		{DifficultyEasy, 12, TierInsane},
		{DifficultyMedium, 0, TierMedium},
		{DifficultyMedium, 1, TierMedium},
		{DifficultyMedium, 2, TierHard},
		{DifficultyMedium, 5, TierHard},
		{DifficultyMedium, 6, TierInsane},
		{DifficultyHard, 0, TierHard},
		{DifficultyHard, 2, TierHard},
		{DifficultyHard, 3, TierInsane},
		{DifficultyInfinite, 0, TierMedium},
		{DifficultyInfinite, 4, TierMedium},
		{DifficultyInfinite, 5, TierHard},
		{DifficultyInfinite, 9, TierHard},
		{DifficultyInfinite, 10, TierInsane},
		{Difficulty(99), 50, TierEasy},
	}

	for _, tt := range tests {
		g := NewGenerator(rand.New(rand.NewSource(1)))
		for i := 0; i < tt.streak; i++ {
			g.RecordAnswer(true)
		}
		if got := g.TierFor(tt.base); got != tt.want {
			t.Errorf("TierFor(%v) with streak %d = %v, want %v", tt.base, tt.streak, got, tt.want)
		}
	}
}

func TestRecordAnswer(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	for i := 1; i <= 4; i++ {
		g.RecordAnswer(true)
		if g.Streak() != i {
			t.Errorf("Streak() after %d correct = %d, want %d", i, g.Streak(), i)
		}
	}

	g.RecordAnswer(false)
	if g.Streak() != 0 {
		t.Errorf("Streak() after wrong answer = %d, want 0", g.Streak())
	}
}

func TestResetProgressIdempotent(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	g.RecordAnswer(true)
	g.RecordAnswer(true)

	g.ResetProgress()
	if g.Streak() != 0 {
		t.Errorf("Streak() after first reset = %d, want 0", g.Streak())
	}
	g.ResetProgress()
	if g.Streak() != 0 {
		t.Errorf("Streak() after second reset = %d, want 0", g.Streak())
	}
}

func TestGenerateDoesNotChangeStreak(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	g.RecordAnswer(true)
	g.RecordAnswer(true)

	for i := 0; i < 50; i++ {
		g.Generate(DifficultyMedium)
	}
	if g.Streak() != 2 {
		t.Errorf("Streak() after Generate = %d, want 2", g.Streak())
	}
}

func TestGenerateReproducible(t *testing.T) {
	g1 := NewGenerator(rand.New(rand.NewSource(12345)))
	g2 := NewGenerator(rand.New(rand.NewSource(12345)))

	for i := 0; i < 100; i++ {
		q1 := g1.Generate(DifficultyInfinite)
		q2 := g2.Generate(DifficultyInfinite)
		if q1 != q2 {
			t.Fatalf("question %d mismatch: %+v != %+v", i, q1, q2)
		}
	}
}

func TestGenerateConstraints(t *testing.T) {
	bases := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInfinite}
	streaks := []int{0, 3, 7, 12}

	for _, base := range bases {
		for _, streak := range streaks {
			g := NewGenerator(rand.New(rand.NewSource(int64(streak*10 + int(base)))))
			for i := 0; i < streak; i++ {
				g.RecordAnswer(true)
			}
			tier := g.TierFor(base)

			for i := 0; i < 500; i++ {
				q := g.Generate(base)
				if q.Tier != tier {
					t.Fatalf("Generate(%v) tier = %v, want %v", base, q.Tier, tier)
				}
				switch q.Op {
				case OpMul:
					if math.Abs(q.Answer) > maxProduct {
						t.Errorf("multiplication %q answer %v exceeds %d", q.Text, q.Answer, maxProduct)
					}
				case OpDiv:
					if q.B == 0 || q.A%q.B != 0 {
						t.Errorf("division %q is not exact", q.Text)
					}
					if q.Answer != float64(q.A/q.B) || q.Answer != math.Trunc(q.Answer) {
						t.Errorf("division %q answer = %v, want %d", q.Text, q.Answer, q.A/q.B)
					}
				case OpSub:
					if q.Answer < 0 {
						t.Errorf("subtraction %q answer %v is negative", q.Text, q.Answer)
					}
				}
				if q.Tier == TierEasy && (q.Op == OpMul || q.Op == OpDiv) {
					t.Errorf("easy tier produced %q", q.Text)
				}
				if !strings.HasSuffix(q.Text, " ?") {
					t.Errorf("question text %q should end with \" ?\"", q.Text)
				}
			}
		}
	}
}

func TestGenerateOperandRanges(t *testing.T) {
	tests := []struct {
		tier       Tier
		maxOperand int
	}{
		{TierEasy, 20},
		{TierMedium, 50},
		{TierHard, 120},
		{TierInsane, 200},
	}

	for _, tt := range tests {
		g := NewGenerator(rand.New(rand.NewSource(99)))
		for i := 0; i < 500; i++ {
			q := g.generateTier(tt.tier)
			if q.Op != OpAdd && q.Op != OpSub {
				continue
			}
			if q.A < 1 || q.A > tt.maxOperand || q.B < 1 || q.B > tt.maxOperand {
				t.Errorf("%v tier operands out of range: %q", tt.tier, q.Text)
			}
		}
	}
}

func TestGenerateAcceptsOversizedAfterAttemptCap(t *testing.T) {
	// Always drawing the maximum yields 12 × 10 at the medium tier, which never fits.
	src := &maxSource{}
	g := NewGenerator(src)

	q := g.Generate(DifficultyMedium)

	if q.Op != OpMul {
		t.Fatalf("Generate() op = %v, want multiplication", q.Op)
	}
	if q.Answer != 120 {
		t.Errorf("Generate() answer = %v, want 120", q.Answer)
	}
	// Each attempt: 1 operator draw, 1 initial factor pair, 50 retried pairs.
	perAttempt := 1 + 2 + mediumMulRetries*2
	if src.calls != maxAttempts*perAttempt {
		t.Errorf("random draws = %d, want %d", src.calls, maxAttempts*perAttempt)
	}
}

func TestBoundedMultiplicationFallback(t *testing.T) {
	src := &maxSource{}
	g := NewGenerator(src)

	q := g.boundedMultiplication(TierInsane, 15, 12, insaneMulRetries, 12, 10)

	if q.A != 12 || q.B != 10 {
		t.Errorf("fallback operands = %d × %d, want 12 × 10", q.A, q.B)
	}
	if src.calls != insaneMulRetries*2+2 {
		t.Errorf("random draws = %d, want %d", src.calls, insaneMulRetries*2+2)
	}
}

func TestDifficultyParseRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInfinite} {
		if got := ParseDifficulty(d.String()); got != d {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDifficulty("nonsense"); got != DifficultyEasy {
		t.Errorf("ParseDifficulty(nonsense) = %v, want easy", got)
	}
}
