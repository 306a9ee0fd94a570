// internal/component/wave.go
package component

import "ar-tower-defense/internal/defs"

// Wave is the run-time state of the wave currently being spawned.
type Wave struct {
	Index      int // 0-based index into the wave table
	Def        defs.WaveDefinition
	Spawned    int
	ConeCenter float64 // radians, re-rolled per wave
}
