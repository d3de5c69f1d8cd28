// Package camera holds the named camera-type presets a caller can pick
// instead of typing focal length and sensor size by hand.
package camera

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pavlo-mel/coordinate-converter-app/geolocate"
)

// Built-in preset names.
const (
	WideAngle = "wide-angle"
	Telephoto = "telephoto"
	Other     = "other"
)

// Preset pairs a camera-type name with the lens and sensor parameters the
// intrinsics are built from.
type Preset struct {
	Name        string                `json:"name"`
	FocalLength geolocate.FocalLength `json:"focal_length"`
	SensorSize  geolocate.SensorSize  `json:"sensor_size"`
}

// Defaults returns the built-in presets.
func Defaults() []Preset {
	return []Preset{
		{Name: WideAngle, FocalLength: geolocate.FocalLength{X: 24, Y: 24}, SensorSize: geolocate.SensorSize{Width: 17.3, Height: 13.0}},
		{Name: Telephoto, FocalLength: geolocate.FocalLength{X: 162, Y: 162}, SensorSize: geolocate.SensorSize{Width: 6.4, Height: 4.8}},
		{Name: Other, FocalLength: geolocate.FocalLength{X: 50, Y: 50}, SensorSize: geolocate.SensorSize{Width: 15, Height: 15}},
	}
}

// Find returns the preset with the given name.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Names returns the preset names in sorted order.
func Names(presets []Preset) []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Load reads presets from a JSON file and merges them over the built-ins:
// a file preset with a known name replaces it, a new name extends the list.
func Load(path string) ([]Preset, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("presets file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var loaded []Preset
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse presets JSON: %w", err)
	}

	presets := Defaults()
	for _, p := range loaded {
		if err := validate(p); err != nil {
			return nil, err
		}
		if i := index(presets, p.Name); i >= 0 {
			presets[i] = p
		} else {
			presets = append(presets, p)
		}
	}
	return presets, nil
}

func index(presets []Preset, name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func validate(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset with empty name")
	}
	if p.FocalLength.X <= 0 || p.FocalLength.Y <= 0 {
		return fmt.Errorf("preset %q: focal length must be strictly positive", p.Name)
	}
	if p.SensorSize.Width <= 0 || p.SensorSize.Height <= 0 {
		return fmt.Errorf("preset %q: sensor size must be strictly positive", p.Name)
	}
	return nil
}
