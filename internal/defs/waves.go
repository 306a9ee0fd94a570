// internal/defs/waves.go
package defs

// WaveTable defines the wave sequence. Early waves attack from a narrow
// cone; later waves surround the base.
var WaveTable = []WaveDefinition{
	{Count: 5, Speed: 0.10, SpreadDeg: 60, DurationMs: 5000, Health: 1, Damage: 10},
	{Count: 7, Speed: 0.11, SpreadDeg: 80, DurationMs: 6300, Health: 1, Damage: 10},
	{Count: 9, Speed: 0.12, SpreadDeg: 100, DurationMs: 7200, Health: 1, Damage: 10},
	{Count: 11, Speed: 0.13, SpreadDeg: 140, DurationMs: 7700, Health: 1, Damage: 10},
	{Count: 13, Speed: 0.14, SpreadDeg: 180, DurationMs: 7800, Health: 1, Damage: 10},
	{Count: 15, Speed: 0.15, SpreadDeg: 220, DurationMs: 7500, Health: 1, Damage: 10},
	{Count: 17, Speed: 0.16, SpreadDeg: 260, DurationMs: 6800, Health: 1, Damage: 10},
	{Count: 19, Speed: 0.18, SpreadDeg: 300, DurationMs: 6600, Health: 1, Damage: 10},
	{Count: 22, Speed: 0.20, SpreadDeg: 360, DurationMs: 6600, Health: 1, Damage: 10},
	{Count: 26, Speed: 0.22, SpreadDeg: 360, DurationMs: 6500, Health: 1, Damage: 10},
}
