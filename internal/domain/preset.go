package domain

import (
	"fmt"
	"sort"
	"time"
)

// Preset is a named timer mode
type Preset struct {
	BreakDuration time.Duration
	Description   string
	Name          string
	WorkDuration  time.Duration
}

// DefaultPresetName is used when neither flags nor settings pick a preset
const DefaultPresetName = "pomodoro"

// Presets is the registry of built-in timer modes
var Presets = map[string]Preset{
	"pomodoro": {Name: "pomodoro", Description: "Pomodoro (25 min)", WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute},
	"quick":    {Name: "quick", Description: "Quick focus (15 min)", WorkDuration: 15 * time.Minute, BreakDuration: 0},
	"study":    {Name: "study", Description: "Study session (45 min)", WorkDuration: 45 * time.Minute, BreakDuration: 10 * time.Minute},
}

// LookupPreset returns the preset with the given name
func LookupPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return p, nil
}

// PresetNames returns the sorted preset names
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
