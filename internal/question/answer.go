package question

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference under which an answer counts as correct.
const Tolerance = 0.001

// ParseAnswer parses typed input as a number. Both "." and "," are accepted as
// the decimal separator and surrounding whitespace is ignored.
func ParseAnswer(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsCorrect compares a parsed answer with the expected one.
func IsCorrect(got, want float64) bool {
	return math.Abs(got-want) < Tolerance
}

// FormatAnswer renders an expected answer for feedback messages:
// integral values without decimals, everything else with three.
func FormatAnswer(a float64) string {
	if math.Abs(a-math.Round(a)) < 0.0001 {
		return strconv.FormatInt(int64(math.Round(a)), 10)
	}
	return fmt.Sprintf("%.3f", a)
}
