// internal/economy/economy.go
package economy

import (
	"strconv"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/interfaces"
)

// Economy tracks the persistent point balance funded by kills and spent in
// the upgrade shop. The balance survives runs; a missing or unparsable
// stored value falls back to zero.
type Economy struct {
	store   interfaces.Store
	balance int
}

func New(store interfaces.Store) *Economy {
	e := &Economy{store: store}
	if raw, ok := store.Get(config.StorageKeyPoints); ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			e.balance = v
		}
	}
	return e
}

func (e *Economy) Balance() int {
	return e.balance
}

// Award adds points earned from a kill and persists the balance.
func (e *Economy) Award(points int) {
	if points <= 0 {
		return
	}
	e.balance += points
	e.save()
}

// Spend debits cost if affordable. Returns false, mutating nothing, when
// the balance is insufficient.
func (e *Economy) Spend(cost int) bool {
	if cost < 0 || cost > e.balance {
		return false
	}
	e.balance -= cost
	e.save()
	return true
}

func (e *Economy) save() {
	e.store.Set(config.StorageKeyPoints, strconv.Itoa(e.balance))
}
