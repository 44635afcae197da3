// Package entity provides the combatants of a match: companions, bosses and the player.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/safemath/internal/gamedata"
)

// Companion is an animal that attacks the boss on the player's behalf.
type Companion struct {
	Def      *gamedata.CompanionDef // Reference to the companion definition (nil for ad-hoc companions)
	Name     string
	Symbol   rune
	Force    int // Damage dealt by a correct attack
	Cooldown int // Ticks until the companion may attack again
}

// NewCompanion creates a companion with the given name and force and no cooldown.
func NewCompanion(name string, force int) *Companion {
	return &Companion{
		Name:   name,
		Symbol: '?',
		Force:  force,
	}
}

// NewCompanionFromDef creates a companion from a data-driven definition.
func NewCompanionFromDef(def *gamedata.CompanionDef) *Companion {
	return &Companion{
		Def:    def,
		Name:   def.Name,
		Symbol: def.SymbolRune(),
		Force:  def.Force,
	}
}

// NewRoster builds the ordered companion roster from definitions.
func NewRoster(defs []gamedata.CompanionDef) []*Companion {
	roster := make([]*Companion, len(defs))
	for i := range defs {
		roster[i] = NewCompanionFromDef(&defs[i])
	}
	return roster
}

// GetName returns the companion's name.
func (c *Companion) GetName() string { return c.Name }

// GetForce returns the companion's attack damage.
func (c *Companion) GetForce() int { return c.Force }

// CanAttack returns true when the companion is off cooldown.
func (c *Companion) CanAttack() bool { return c.Cooldown == 0 }

// SetCooldown puts the companion on cooldown. Negative values are floored at 0.
func (c *Companion) SetCooldown(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.Cooldown = ticks
}

// TickCooldown decrements the cooldown by one, never below 0.
func (c *Companion) TickCooldown() {
	if c.Cooldown > 0 {
		c.Cooldown--
	}
}

// Color returns the tcell color for this companion's card.
func (c *Companion) Color() tcell.Color {
	if c.Def != nil {
		return c.Def.TCellColor()
	}
	return tcell.ColorWhite
}

// ID returns the companion's identifier, falling back to its name.
func (c *Companion) ID() string {
	if c.Def != nil {
		return c.Def.ID
	}
	return c.Name
}
