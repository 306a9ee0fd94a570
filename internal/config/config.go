// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Simulation tick. Enemy movement advances by Speed*FixedStep per frame
	// regardless of real frame timing.
	FixedStep = 1.0 / 60.0

	// Wave scheduling.
	MinSpawnTime   = 250 * time.Millisecond
	InterWaveBreak = 3 * time.Second
	// Spreads within this many radians of a full circle sample uniformly.
	FullCircleEpsilon = 1e-6

	// Distance from the base origin at which enemies appear, meters.
	SpawnDistance = 1.2

	// Tower stabilization.
	StabilityDuration = 3 * time.Second
	JitterTolerance   = 0.008 // meters, frame-to-frame
	MoveThreshold     = 0.05  // meters from home position
	LostGracePeriod   = 1500 * time.Millisecond

	// Combat.
	BaseTowerRange      = 0.6 // meters, scaled by the range upgrade track
	AttackFlashDuration = 150 * time.Millisecond
	PointsPerKill       = 10
	PointMultiplier     = 1

	// Enemies and base.
	ArrivalThreshold = 0.02 // meters
	DamagePerArrival = 10
	EnemyHealth      = 1
	BaseMaxHealth    = 100
)

// Persisted state keys. Values are plain strings or JSON blobs; any read
// failure falls back to defaults.
const (
	StorageKeyUpgrades   = "arTD.upgrades"
	StorageKeyPoints     = "arTD.points"
	StorageKeyShopVisits = "arTD.shopVisits"
)

// Demo driver.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WorldScale   = 320.0 // pixels per meter
	MaxDeltaTime = 0.25  // seconds, clamp after window-focus stalls
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BaseColor       = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	TowerColor      = color.RGBA{70, 130, 180, 255}
	BuildingColor   = color.RGBA{194, 178, 128, 255}
	UntrackedColor  = color.RGBA{90, 90, 100, 255}
	RangeRingColor  = color.RGBA{240, 240, 240, 60}
	BeamColor       = color.RGBA{255, 255, 0, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PausedColor     = color.RGBA{220, 60, 60, 220}
	RunningColor    = color.RGBA{70, 130, 180, 220}
)
