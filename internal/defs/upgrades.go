// internal/defs/upgrades.go
package defs

// UpgradeCatalog defines the meta-upgrade shop. Level 0 of every track is
// the free baseline.
//
// Value semantics per track: range is a multiplier on the base tower range,
// fire_rate is the cooldown in milliseconds, base_health is the base's max
// health, tower_count is the number of unlocked tower anchors,
// rebuild_speed divides the stabilization duration, wave_skip is the
// 0-based starting wave index.
var UpgradeCatalog = []UpgradeTrack{
	{
		ID:   TrackRange,
		Name: "Tower Range",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 1.0},
			{Cost: 100, Value: 1.25},
			{Cost: 250, Value: 1.5},
			{Cost: 500, Value: 2.0},
		},
	},
	{
		ID:   TrackFireRate,
		Name: "Fire Rate",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 1500},
			{Cost: 100, Value: 1200},
			{Cost: 250, Value: 900},
			{Cost: 500, Value: 600},
		},
	},
	{
		ID:   TrackBaseHealth,
		Name: "Base Health",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 100},
			{Cost: 150, Value: 150},
			{Cost: 400, Value: 200},
		},
	},
	{
		ID:   TrackTowerCount,
		Name: "Extra Tower",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 1},
			{Cost: 300, Value: 2},
			{Cost: 800, Value: 3},
		},
	},
	{
		ID:   TrackRebuildSpeed,
		Name: "Rebuild Speed",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 1.0},
			{Cost: 200, Value: 1.5},
			{Cost: 450, Value: 2.0},
		},
	},
	{
		ID:   TrackWaveSkip,
		Name: "Head Start",
		Levels: []UpgradeLevel{
			{Cost: 0, Value: 0},
			{Cost: 250, Value: 1},
			{Cost: 600, Value: 2},
		},
	},
}
