package match

import "github.com/samdwyer/safemath/internal/entity"

// Available returns the companions the player may choose from: in Math mode the
// roster up to and including the unlocked companion, otherwise the whole roster.
func (m *Match) Available() []*entity.Companion {
	if m.mode == ModeMath {
		return append([]*entity.Companion(nil), m.roster[:m.unlocked+1]...)
	}
	return m.Roster()
}

// Selected returns the companion that will act on the next attack.
func (m *Match) Selected() *entity.Companion { return m.roster[m.selected] }

// SelectedIndex returns the roster index of the selected companion.
func (m *Match) SelectedIndex() int { return m.selected }

// LockedIndex returns the roster index of the companion waiting to be
// re-selected once its cooldown ends, or -1.
func (m *Match) LockedIndex() int { return m.locked }

// Select makes the companion at roster index the attacker. It must be available
// and off cooldown.
func (m *Match) Select(index int) error {
	if m.IsOver() {
		return ErrMatchOver
	}
	if index < 0 || index >= len(m.Available()) {
		return ErrCompanionLocked
	}
	if !m.roster[index].CanAttack() {
		return ErrCompanionCooling
	}
	m.selected = index
	if m.locked == index {
		m.locked = -1
	}
	return nil
}

// releaseLocked re-selects the displaced companion once its cooldown is over.
func (m *Match) releaseLocked() {
	if m.locked < 0 || !m.roster[m.locked].CanAttack() {
		return
	}
	m.selected = m.locked
	m.locked = -1
}

// ensureSelection replaces an unavailable or cooling selection with a fallback.
func (m *Match) ensureSelection() {
	available := m.Available()
	if m.selected < len(available) && available[m.selected].CanAttack() {
		return
	}

	var from *entity.Companion
	if m.selected < len(m.roster) {
		from = m.roster[m.selected]
	}
	pick := PickFallback(available, from, m.roster[m.unlocked])
	for i, c := range m.roster {
		if c == pick {
			m.selected = i
			return
		}
	}
}

// PickFallback chooses who acts when from cannot: the nearest companion before
// from in available that is off cooldown, then the nearest after it. If none is
// ready it returns current, or the first available companion when current is nil.
// A from that is not in available yields current directly.
func PickFallback(available []*entity.Companion, from, current *entity.Companion) *entity.Companion {
	idx := -1
	for i, c := range available {
		if c == from {
			idx = i
			break
		}
	}
	if idx == -1 {
		if current == nil && len(available) > 0 {
			return available[0]
		}
		return current
	}

	for i := idx - 1; i >= 0; i-- {
		if available[i].CanAttack() {
			return available[i]
		}
	}
	for i := idx + 1; i < len(available); i++ {
		if available[i].CanAttack() {
			return available[i]
		}
	}

	if current != nil {
		return current
	}
	return available[0]
}
