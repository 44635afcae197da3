package entity

// takeDamage subtracts amount from *hp, flooring at 0, and returns what was removed.
func takeDamage(hp *int, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > *hp {
		actual = *hp
	}
	*hp -= actual
	return actual
}

func fraction(hp, maxHP int) float64 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	return float64(hp) / float64(maxHP)
}
