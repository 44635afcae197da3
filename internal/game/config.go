package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/safemath/internal/match"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible question sequences
	// and boss rolls. A seed of 0 means a random seed will be generated.
	Seed int64

	// Mode skips the menu and starts a match directly when HasMode is set.
	Mode    match.Mode
	HasMode bool
}

// ConfigFromEnv reads SAFEMATH_SEED and SAFEMATH_MODE. Unset variables keep
// their defaults; malformed ones are errors.
func ConfigFromEnv() (Config, error) {
	var cfg Config

	if raw := strings.TrimSpace(os.Getenv("SAFEMATH_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("SAFEMATH_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if raw := strings.TrimSpace(os.Getenv("SAFEMATH_MODE")); raw != "" {
		mode, err := match.ParseMode(raw)
		if err != nil {
			return cfg, fmt.Errorf("SAFEMATH_MODE: %w", err)
		}
		cfg.Mode = mode
		cfg.HasMode = true
	}

	return cfg, nil
}
