// cmd/wave_viewer_raylib/main.go
//
// Standalone visualizer for the wave table: draws the spawn circle, the
// wave's spawn cone and a cloud of sampled spawn points, so spread and
// cadence values can be tuned by eye. Arrow keys switch waves, space
// re-rolls the cone.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"ar-tower-defense/internal/config"
	"ar-tower-defense/internal/defs"
	"ar-tower-defense/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenW = 1000
	screenH = 800
	scale   = 280 // pixels per meter
	samples = 300
)

func main() {
	wavesPath := flag.String("waves", "", "optional YAML wave table to preview")
	flag.Parse()

	if *wavesPath != "" {
		if err := defs.LoadWaveTable(*wavesPath); err != nil {
			log.Fatalf("load wave table: %v", err)
		}
	}
	waves := defs.WaveTable

	rl.InitWindow(screenW, screenH, "Wave Viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := utils.NewPRNGService(42)
	idx := 0
	coneCenter := rng.Angle()
	angles := sampleAngles(waves[idx], coneCenter, rng)

	for !rl.WindowShouldClose() {
		changed := false
		if rl.IsKeyPressed(rl.KeyRight) {
			idx = (idx + 1) % len(waves)
			changed = true
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			idx = (idx - 1 + len(waves)) % len(waves)
			changed = true
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			changed = true
		}
		if changed {
			coneCenter = rng.Angle()
			angles = sampleAngles(waves[idx], coneCenter, rng)
		}

		def := waves[idx]
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		cx, cy := float32(screenW)/2, float32(screenH)/2
		spawnR := float32(config.SpawnDistance * scale)

		rl.DrawCircleLines(int32(cx), int32(cy), spawnR, rl.Gray)
		rl.DrawCircle(int32(cx), int32(cy), 10, rl.Green)

		if def.SpreadRad() < 2*math.Pi-config.FullCircleEpsilon {
			half := def.SpreadRad() / 2
			for _, edge := range []float64{coneCenter - half, coneCenter + half} {
				ex := cx + float32(math.Cos(edge))*spawnR
				ey := cy + float32(math.Sin(edge))*spawnR
				rl.DrawLineEx(rl.NewVector2(cx, cy), rl.NewVector2(ex, ey), 2, rl.SkyBlue)
			}
		}

		for _, a := range angles {
			px := cx + float32(math.Cos(a))*spawnR
			py := cy + float32(math.Sin(a))*spawnR
			rl.DrawCircle(int32(px), int32(py), 3, rl.Red)
		}

		info := fmt.Sprintf(
			"wave %d/%d   count %d   speed %.2f m/s   spread %.0f deg   duration %d ms   interval %s",
			idx+1, len(waves), def.Count, def.Speed, def.SpreadDeg, def.DurationMs, def.SpawnInterval(),
		)
		rl.DrawText(info, 20, 20, 20, rl.RayWhite)
		rl.DrawText("left/right switch wave, space re-rolls the cone", 20, 50, 18, rl.LightGray)

		rl.EndDrawing()
	}
}

// sampleAngles draws spawn directions the way the simulation does: uniform
// over the circle for full-circle spreads, uniform within the cone otherwise.
func sampleAngles(def defs.WaveDefinition, coneCenter float64, rng *utils.PRNGService) []float64 {
	angles := make([]float64, 0, samples)
	spread := def.SpreadRad()
	for i := 0; i < samples; i++ {
		if spread >= 2*math.Pi-config.FullCircleEpsilon {
			angles = append(angles, rng.Angle())
		} else {
			angles = append(angles, rng.InRange(coneCenter-spread/2, coneCenter+spread/2))
		}
	}
	return angles
}
