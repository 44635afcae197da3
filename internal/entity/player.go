package entity

import "github.com/samdwyer/safemath/internal/combat"

// DefaultPlayerHP is the player's maximum health for a whole match.
const DefaultPlayerHP = 200

// Player is the human defending against the boss.
type Player struct {
	HP    int
	MaxHP int
}

// NewPlayer creates a player at full health.
func NewPlayer(maxHP int) *Player {
	if maxHP < 1 {
		maxHP = DefaultPlayerHP
	}
	return &Player{HP: maxHP, MaxHP: maxHP}
}

// GetName returns the player's display name.
func (p *Player) GetName() string { return "Player" }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	return takeDamage(&p.HP, amount)
}

// HealthFraction returns HP/MaxHP in [0, 1].
func (p *Player) HealthFraction() float64 {
	return fraction(p.HP, p.MaxHP)
}

var _ combat.Combatant = (*Player)(nil)
