// internal/defs/types.go
package defs

import (
	"math"
	"time"

	"ar-tower-defense/internal/config"
)

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	Count      int     `yaml:"count"`       // enemies in the wave
	Speed      float64 `yaml:"speed"`       // meters per second toward the base
	SpreadDeg  float64 `yaml:"spread_deg"`  // spawn cone width, degrees
	DurationMs int     `yaml:"duration_ms"` // total wave duration, spawn interval derives from it
	Health     int     `yaml:"health"`      // per-enemy health, defaults to 1
	Damage     int     `yaml:"damage"`      // damage to the base on arrival, defaults to 10
}

// SpawnInterval derives the even per-enemy spawn interval, floored at
// MinSpawnTime.
func (w WaveDefinition) SpawnInterval() time.Duration {
	if w.Count <= 0 {
		return config.MinSpawnTime
	}
	interval := time.Duration(math.Round(float64(w.DurationMs)/float64(w.Count))) * time.Millisecond
	if interval < config.MinSpawnTime {
		return config.MinSpawnTime
	}
	return interval
}

// SpreadRad returns the spawn cone width in radians.
func (w WaveDefinition) SpreadRad() float64 {
	return w.SpreadDeg * math.Pi / 180
}

// UpgradeLevel is one step of an upgrade track. Cost is the marginal price
// to move from the previous level to this one; level 0 is the free baseline.
type UpgradeLevel struct {
	Cost  int     `yaml:"cost"`
	Value float64 `yaml:"value"`
}

// UpgradeTrack is a named, leveled progression purchased with points.
type UpgradeTrack struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Levels []UpgradeLevel `yaml:"levels"`
}

// Well-known track ids. The effect derivation in internal/upgrade keys off
// these.
const (
	TrackRange        = "range"
	TrackFireRate     = "fire_rate"
	TrackBaseHealth   = "base_health"
	TrackTowerCount   = "tower_count"
	TrackRebuildSpeed = "rebuild_speed"
	TrackWaveSkip     = "wave_skip"
)
