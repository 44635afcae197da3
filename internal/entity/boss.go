package entity

import "github.com/samdwyer/safemath/internal/combat"

// Boss is the enemy of a single encounter. A new boss replaces the old one on respawn.
type Boss struct {
	Name      string
	HP        int
	MaxHP     int
	ArtIndex  int // 1-based boss art for the presentation layer
}

// NewBoss creates a boss at full health. A non-positive maxHP is raised to 1.
func NewBoss(name string, maxHP, artIndex int) *Boss {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Boss{
		Name:     name,
		HP:       maxHP,
		MaxHP:    maxHP,
		ArtIndex: artIndex,
	}
}

// GetName returns the boss's name.
func (b *Boss) GetName() string { return b.Name }

// IsAlive returns true if the boss has HP remaining.
func (b *Boss) IsAlive() bool { return b.HP > 0 }

// GetHP returns current HP.
func (b *Boss) GetHP() int { return b.HP }

// GetMaxHP returns maximum HP.
func (b *Boss) GetMaxHP() int { return b.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (b *Boss) TakeDamage(amount int) int {
	return takeDamage(&b.HP, amount)
}

// HealthFraction returns HP/MaxHP in [0, 1].
func (b *Boss) HealthFraction() float64 {
	return fraction(b.HP, b.MaxHP)
}

var _ combat.Combatant = (*Boss)(nil)
