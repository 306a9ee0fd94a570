// internal/component/enemy.go
package component

// Enemy marks an entity as an attacker converging on the base. Damage is
// applied to the base's health when the enemy arrives.
type Enemy struct {
	Damage int
}

// Velocity is scalar speed toward the base origin, meters per second.
type Velocity struct {
	Speed float64
}

// Health is remaining hit points. Towers currently one-shot anything with
// Value <= 1; the field exists so tougher enemy types can vary per wave.
type Health struct {
	Value int
}
