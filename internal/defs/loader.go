// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWaveTable replaces WaveTable with definitions read from a YAML file.
// The built-in table stays in place when the file is absent.
func LoadWaveTable(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waves []WaveDefinition
	if err := yaml.Unmarshal(file, &waves); err != nil {
		return fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	if len(waves) == 0 {
		return fmt.Errorf("wave definitions file %s is empty", path)
	}
	for i := range waves {
		if waves[i].Health <= 0 {
			waves[i].Health = 1
		}
		if waves[i].Damage <= 0 {
			waves[i].Damage = 10
		}
	}

	WaveTable = waves
	log.Printf("Loaded %d wave definitions from %s", len(WaveTable), path)
	return nil
}

// LoadUpgradeCatalog replaces UpgradeCatalog with tracks read from a YAML
// file.
func LoadUpgradeCatalog(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read upgrade catalog file: %w", err)
	}

	var tracks []UpgradeTrack
	if err := yaml.Unmarshal(file, &tracks); err != nil {
		return fmt.Errorf("failed to unmarshal upgrade catalog: %w", err)
	}
	for _, tr := range tracks {
		if tr.ID == "" || len(tr.Levels) == 0 {
			return fmt.Errorf("upgrade track %q in %s has no id or no levels", tr.ID, path)
		}
	}

	UpgradeCatalog = tracks
	log.Printf("Loaded %d upgrade tracks from %s", len(UpgradeCatalog), path)
	return nil
}
