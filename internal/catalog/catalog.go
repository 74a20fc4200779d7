// Package catalog holds the static filament material presets copied into a
// user's catalogue the first time that user logs in with no materials.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed materials.json
var materialsJSON []byte

// Preset is a named material and its price per kilogram.
type Preset struct {
	Name      string  `json:"name"`
	CostPerKg float64 `json:"costPerKg"`
}

var (
	loadOnce sync.Once
	presets  []Preset
	loadErr  error
)

// Materials returns a copy of the embedded material presets in catalogue order.
func Materials() ([]Preset, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(materialsJSON, &presets)
		if loadErr != nil {
			loadErr = fmt.Errorf("decoding embedded material presets: %w", loadErr)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]Preset, len(presets))
	copy(out, presets)
	return out, nil
}
