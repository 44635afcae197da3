package entity

import (
	"testing"

	"github.com/samdwyer/safemath/internal/gamedata"
)

func TestNewRoster(t *testing.T) {
	roster := NewRoster(gamedata.MustLoadCompanions())

	if len(roster) != 5 {
		t.Fatalf("NewRoster() length = %d, want 5", len(roster))
	}
	if roster[0].Name != "Rabbit" || roster[0].Force != 10 {
		t.Errorf("roster[0] = %+v, want Rabbit/10", *roster[0])
	}
	if roster[4].ID() != "tiger" {
		t.Errorf("roster[4].ID() = %q, want tiger", roster[4].ID())
	}
	for _, c := range roster {
		if c.Cooldown != 0 {
			t.Errorf("%s starts with cooldown %d", c.Name, c.Cooldown)
		}
	}
}

func TestCompanionCooldown(t *testing.T) {
	c := NewCompanion("Cat", 20)

	if !c.CanAttack() {
		t.Error("new companion should be able to attack")
	}

	c.SetCooldown(2)
	if c.CanAttack() {
		t.Error("companion on cooldown should not attack")
	}

	c.TickCooldown()
	if c.Cooldown != 1 {
		t.Errorf("Cooldown after tick = %d, want 1", c.Cooldown)
	}
	c.TickCooldown()
	c.TickCooldown()
	if c.Cooldown != 0 {
		t.Errorf("Cooldown should floor at 0, got %d", c.Cooldown)
	}

	c.SetCooldown(-3)
	if c.Cooldown != 0 {
		t.Errorf("SetCooldown(-3) = %d, want 0", c.Cooldown)
	}
}

func TestBossDamage(t *testing.T) {
	b := NewBoss("Boss", 30, 1)

	if got := b.TakeDamage(10); got != 10 || b.HP != 20 {
		t.Errorf("TakeDamage(10) = %d, HP %d; want 10, 20", got, b.HP)
	}
	if got := b.TakeDamage(-5); got != 0 || b.HP != 20 {
		t.Errorf("TakeDamage(-5) = %d, HP %d; want 0, 20", got, b.HP)
	}
	if got := b.TakeDamage(100); got != 20 || b.HP != 0 {
		t.Errorf("TakeDamage(100) = %d, HP %d; want 20, 0", got, b.HP)
	}
	if b.IsAlive() {
		t.Error("boss at 0 HP should be dead")
	}
	if b.HealthFraction() != 0 {
		t.Errorf("HealthFraction() = %v, want 0", b.HealthFraction())
	}
}

func TestNewBossMinimumHealth(t *testing.T) {
	b := NewBoss("Boss", 0, 1)
	if b.MaxHP != 1 || b.HP != 1 {
		t.Errorf("NewBoss(0) = %d/%d, want 1/1", b.HP, b.MaxHP)
	}
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(DefaultPlayerHP)

	if p.HP != 200 || p.MaxHP != 200 {
		t.Fatalf("NewPlayer() = %d/%d, want 200/200", p.HP, p.MaxHP)
	}

	p.TakeDamage(50)
	if p.HealthFraction() != 0.75 {
		t.Errorf("HealthFraction() = %v, want 0.75", p.HealthFraction())
	}

	p.TakeDamage(500)
	if p.HP != 0 || p.IsAlive() {
		t.Errorf("player HP = %d, want 0 and dead", p.HP)
	}
}
