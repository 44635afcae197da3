package gamedata

import "errors"

// ModeRegistry holds loaded mode definitions keyed by ID.
type ModeRegistry struct {
	modes map[string]*ModeDef
	all   []ModeDef
}

// NewModeRegistry creates a registry from loaded mode definitions.
func NewModeRegistry(modes []ModeDef) *ModeRegistry {
	registry := &ModeRegistry{
		modes: make(map[string]*ModeDef, len(modes)),
		all:   modes,
	}
	for i := range modes {
		registry.modes[modes[i].ID] = &modes[i]
	}
	return registry
}

// LoadModeRegistry loads and creates a registry from the embedded modes.json.
func LoadModeRegistry() (*ModeRegistry, error) {
	modes, err := LoadModes()
	if err != nil {
		return nil, err
	}
	return NewModeRegistry(modes), nil
}

// MustLoadModeRegistry loads a registry, panicking on error.
func MustLoadModeRegistry() *ModeRegistry {
	registry, err := LoadModeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ErrUnknownMode is returned when a mode ID has no definition.
var ErrUnknownMode = errors.New("unknown mode")

// GetByID returns the mode definition with the given ID, or nil if not found.
func (r *ModeRegistry) GetByID(id string) *ModeDef {
	return r.modes[id]
}

// Lookup is GetByID with an error for missing modes.
func (r *ModeRegistry) Lookup(id string) (*ModeDef, error) {
	if def := r.modes[id]; def != nil {
		return def, nil
	}
	return nil, ErrUnknownMode
}

// All returns all mode definitions in file order.
func (r *ModeRegistry) All() []ModeDef {
	return r.all
}

// Count returns the number of modes in the registry.
func (r *ModeRegistry) Count() int {
	return len(r.all)
}
