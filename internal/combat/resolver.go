// Package combat resolves attacks on the boss and the boss's strikes on the player.
package combat

import (
	"fmt"
	"math"
)

// Combatant is anything with health that can be damaged: the boss and the player.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int
	TakeDamage(amount int) int // Returns actual damage taken
}

// Attacker is a companion that can strike a Combatant.
type Attacker interface {
	GetName() string
	GetForce() int
	CanAttack() bool
}

// cooldownRatio is the fraction of a companion's force that becomes its cooldown.
const cooldownRatio = 0.1

// CooldownFor returns the cooldown a companion with the given force receives after
// a successful attack: round(force*0.1), at least 1.
func CooldownFor(force int) int {
	cd := int(math.Round(float64(force) * cooldownRatio))
	if cd < 1 {
		cd = 1
	}
	return cd
}

// AttackResult is the outcome of the player's attack turn.
type AttackResult struct {
	Attacked     bool // A correct answer landed with a ready companion
	OnCooldown   bool // The companion was cooling down; no damage regardless of answer
	Damage       int  // Damage actually dealt
	TargetKilled bool
	Message      string
}

// DefenseResult is the outcome of the boss's strike during a defense turn.
type DefenseResult struct {
	Roll    int  // Damage the boss rolled
	Perfect bool // Correct answer negated the roll
	Damage  int  // Damage actually taken
	Killed  bool
	Message string
}

// Resolver applies combat rules to combatants.
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveAttack applies the attacker's force to target when the answer is
// correct and the attacker is off cooldown. Cooldown gating wins over correctness.
func (r *Resolver) ResolveAttack(attacker Attacker, target Combatant, correct bool) AttackResult {
	if !attacker.CanAttack() {
		return AttackResult{
			OnCooldown: true,
			Message:    attacker.GetName() + " is cooling down!",
		}
	}
	if !correct {
		return AttackResult{Message: "Wrong!"}
	}

	dealt := target.TakeDamage(attacker.GetForce())
	return AttackResult{
		Attacked:     true,
		Damage:       dealt,
		TargetKilled: !target.IsAlive(),
		Message:      fmt.Sprintf("%s hits %s for %d damage!", attacker.GetName(), target.GetName(), dealt),
	}
}

// ResolveDefense applies a boss roll to target unless the answer was correct.
func (r *Resolver) ResolveDefense(target Combatant, roll int, correct bool) DefenseResult {
	if correct {
		return DefenseResult{
			Roll:    roll,
			Perfect: true,
			Message: "Perfect defense!",
		}
	}

	taken := target.TakeDamage(roll)
	return DefenseResult{
		Roll:    roll,
		Damage:  taken,
		Killed:  !target.IsAlive(),
		Message: fmt.Sprintf("Defense failed! %s takes %d damage.", target.GetName(), taken),
	}
}

// RollDamage draws a boss strike uniformly from [1, maxDamage].
func RollDamage(rng interface{ Intn(int) int }, maxDamage int) int {
	if maxDamage < 1 {
		return 1
	}
	return rng.Intn(maxDamage) + 1
}
