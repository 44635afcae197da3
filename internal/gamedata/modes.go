package gamedata

import (
	"errors"
	"fmt"
)

// ModeDef holds the parameters of a game mode loaded from modes.json.
//
// Exactly one boss health rule applies per mode:
//   - healthPerForce: boss health is the unlocked companion's force times this factor
//   - stageHealth: boss health per stage; the stage count is len(stageHealth)
//   - fixedHealth: every boss has this health
//
// The maximum defense roll is defenseBase + stage*defensePerStage.
type ModeDef struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Difficulty      string `json:"difficulty"` // easy | medium | hard | infinite
	BossName        string `json:"bossName"`
	BossArtCount    int    `json:"bossArtCount"`
	HealthPerForce  int    `json:"healthPerForce,omitempty"`
	StageHealth     []int  `json:"stageHealth,omitempty"`
	FixedHealth     int    `json:"fixedHealth,omitempty"`
	DefenseBase     int    `json:"defenseBase"`
	DefensePerStage int    `json:"defensePerStage,omitempty"`
}

// Stages returns the number of bosses in a staged mode, 0 otherwise.
func (m *ModeDef) Stages() int {
	return len(m.StageHealth)
}

// HealthForStage returns the boss health for a stage, clamping past the last stage.
func (m *ModeDef) HealthForStage(stage int) int {
	if len(m.StageHealth) == 0 {
		return 0
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(m.StageHealth) {
		stage = len(m.StageHealth) - 1
	}
	return m.StageHealth[stage]
}

// MaxDefenseDamage returns the upper bound of the boss's damage roll at stage.
func (m *ModeDef) MaxDefenseDamage(stage int) int {
	return m.DefenseBase + stage*m.DefensePerStage
}

func (m *ModeDef) validate() error {
	rules := 0
	if m.HealthPerForce > 0 {
		rules++
	}
	if len(m.StageHealth) > 0 {
		rules++
	}
	if m.FixedHealth > 0 {
		rules++
	}
	if rules != 1 {
		return fmt.Errorf("mode %q: exactly one boss health rule required, got %d", m.ID, rules)
	}
	if m.DefenseBase <= 0 {
		return fmt.Errorf("mode %q: defenseBase must be positive", m.ID)
	}
	if m.BossArtCount <= 0 {
		return fmt.Errorf("mode %q: bossArtCount must be positive", m.ID)
	}
	return nil
}

// ModesFile represents the structure of modes.json.
type ModesFile struct {
	Modes []ModeDef `json:"modes"`
}

// LoadModes loads mode definitions from the embedded modes.json.
func LoadModes() ([]ModeDef, error) {
	file, err := Load[ModesFile]("modes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Modes) == 0 {
		return nil, errors.New("no modes loaded from modes.json")
	}
	for i := range file.Modes {
		if err := file.Modes[i].validate(); err != nil {
			return nil, fmt.Errorf("modes.json: %w", err)
		}
	}
	return file.Modes, nil
}
