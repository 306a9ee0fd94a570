// internal/upgrade/upgrade.go
package upgrade

import (
	"encoding/json"
	"errors"
	"time"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/interfaces"
)

var (
	ErrUnknownTrack = errors.New("unknown upgrade track")
	ErrMaxLevel     = errors.New("upgrade track already at max level")
)

// Ledger holds the reached level of every upgrade track, persisted as a
// JSON object of track id to integer level. Corrupt or missing stored state
// falls back to level 0 everywhere.
type Ledger struct {
	store   interfaces.Store
	catalog []defs.UpgradeTrack
	levels  map[string]int
}

func NewLedger(catalog []defs.UpgradeTrack, store interfaces.Store) *Ledger {
	l := &Ledger{
		store:   store,
		catalog: catalog,
		levels:  make(map[string]int),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	raw, ok := l.store.Get(config.StorageKeyUpgrades)
	if !ok {
		return
	}
	var stored map[string]int
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return
	}
	for _, tr := range l.catalog {
		lvl, ok := stored[tr.ID]
		if !ok {
			continue
		}
		// Level index always clamped to the track's bounds; a catalog that
		// shrank between sessions must not leave a dangling index.
		if lvl < 0 {
			lvl = 0
		}
		if lvl > len(tr.Levels)-1 {
			lvl = len(tr.Levels) - 1
		}
		l.levels[tr.ID] = lvl
	}
}

func (l *Ledger) save() {
	data, err := json.Marshal(l.levels)
	if err != nil {
		return
	}
	l.store.Set(config.StorageKeyUpgrades, string(data))
}

// Track returns the catalog entry for id.
func (l *Ledger) Track(id string) (defs.UpgradeTrack, bool) {
	for _, tr := range l.catalog {
		if tr.ID == id {
			return tr, true
		}
	}
	return defs.UpgradeTrack{}, false
}

// Catalog returns all tracks in catalog order.
func (l *Ledger) Catalog() []defs.UpgradeTrack {
	return l.catalog
}

// Level returns the current level index of track id, 0 for unknown tracks.
func (l *Ledger) Level(id string) int {
	return l.levels[id]
}

// Value returns the effect value at the track's current level. Unknown
// tracks return 0.
func (l *Ledger) Value(id string) float64 {
	tr, ok := l.Track(id)
	if !ok || len(tr.Levels) == 0 {
		return 0
	}
	return tr.Levels[l.Level(id)].Value
}

// NextCost returns the marginal cost of the next level, or false when the
// track is already at max.
func (l *Ledger) NextCost(id string) (int, bool) {
	tr, ok := l.Track(id)
	if !ok {
		return 0, false
	}
	next := l.Level(id) + 1
	if next > len(tr.Levels)-1 {
		return 0, false
	}
	return tr.Levels[next].Cost, true
}

// Advance moves track id up one level and persists the ledger. Purchasing
// beyond the last level is disallowed.
func (l *Ledger) Advance(id string) error {
	tr, ok := l.Track(id)
	if !ok {
		return ErrUnknownTrack
	}
	next := l.Level(id) + 1
	if next > len(tr.Levels)-1 {
		return ErrMaxLevel
	}
	l.levels[id] = next
	l.save()
	return nil
}

// Reset clears all reached levels back to the free baselines.
func (l *Ledger) Reset() {
	l.levels = make(map[string]int)
	l.store.Remove(config.StorageKeyUpgrades)
}

// Effects are the global parameters derived from the ledger. Tower range
// and fire rate are copied into every live tower instance on apply, not
// read from here at attack time.
type Effects struct {
	TowerRange        float64
	FireRate          time.Duration
	MaxHealth         int
	TowerCount        int
	StabilityDuration time.Duration
	StartWave         int // 0-based index into the wave table
}

// Derive computes the current global parameters from the ledger.
func Derive(l *Ledger) Effects {
	e := Effects{
		TowerRange:        config.BaseTowerRange,
		FireRate:          1500 * time.Millisecond,
		MaxHealth:         config.BaseMaxHealth,
		TowerCount:        1,
		StabilityDuration: config.StabilityDuration,
	}
	if v := l.Value(defs.TrackRange); v > 0 {
		e.TowerRange = config.BaseTowerRange * v
	}
	if v := l.Value(defs.TrackFireRate); v > 0 {
		e.FireRate = time.Duration(v) * time.Millisecond
	}
	if v := l.Value(defs.TrackBaseHealth); v > 0 {
		e.MaxHealth = int(v)
	}
	if _, ok := l.Track(defs.TrackTowerCount); ok {
		e.TowerCount = 1 + l.Level(defs.TrackTowerCount)
	}
	if v := l.Value(defs.TrackRebuildSpeed); v > 0 {
		e.StabilityDuration = time.Duration(float64(config.StabilityDuration) / v)
	}
	if v := l.Value(defs.TrackWaveSkip); v > 0 {
		e.StartWave = int(v)
	}
	return e
}
