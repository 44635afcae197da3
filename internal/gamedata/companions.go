package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// CompanionDef defines a companion loaded from companions.json.
type CompanionDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "rabbit")
	Name   string `json:"name"`   // Display name
	Symbol string `json:"symbol"` // Single character for the companion card
	Color  string `json:"color"`  // Hex color code
	Force  int    `json:"force"`  // Damage dealt by a correct attack
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *CompanionDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return []rune(c.Symbol)[0]
}

// TCellColor returns the companion colour, white if the data is malformed.
func (c *CompanionDef) TCellColor() tcell.Color {
	return colorOr(c.Color, tcell.ColorWhite)
}

// CompanionsFile represents the structure of companions.json.
type CompanionsFile struct {
	Companions []CompanionDef `json:"companions"`
}

// Validate checks the roster is usable: non-empty, unique IDs, positive force.
func (f CompanionsFile) Validate() error {
	if len(f.Companions) == 0 {
		return errors.New("no companions defined")
	}
	seen := make(map[string]bool, len(f.Companions))
	for _, c := range f.Companions {
		if c.ID == "" {
			return fmt.Errorf("companion %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate companion id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Force <= 0 {
			return fmt.Errorf("companion %q: force must be positive, got %d", c.ID, c.Force)
		}
	}
	return nil
}

// LoadCompanions loads the ordered companion roster from the embedded companions.json.
func LoadCompanions() ([]CompanionDef, error) {
	file, err := Load[CompanionsFile]("companions.json")
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("companions.json: %w", err)
	}
	return file.Companions, nil
}

// MustLoadCompanions loads the roster, panicking on error.
func MustLoadCompanions() []CompanionDef {
	companions, err := LoadCompanions()
	if err != nil {
		panic(err)
	}
	return companions
}
