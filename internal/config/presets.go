package config

import "sort"

// Presets are named damping regimes for the spring law. Critical
// damping for unit mass is 2√k; the others bracket it.
var Presets = map[string]*Config{
	"default": {
		Stiffness: 50, Damping: 8, TangentLength: 50,
		Width: DefaultWidth, Height: DefaultHeight, FrameRate: DefaultFrameRate,
	},
	"bouncy": {
		Stiffness: 120, Damping: 3, TangentLength: 50,
		Width: DefaultWidth, Height: DefaultHeight, FrameRate: DefaultFrameRate,
	},
	"critical": {
		Stiffness: 50, Damping: 14.14, TangentLength: 50,
		Width: DefaultWidth, Height: DefaultHeight, FrameRate: DefaultFrameRate,
	},
	"sluggish": {
		Stiffness: 50, Damping: 40, TangentLength: 50,
		Width: DefaultWidth, Height: DefaultHeight, FrameRate: DefaultFrameRate,
	},
	"loose": {
		Stiffness: 12, Damping: 4, TangentLength: 80,
		Width: DefaultWidth, Height: DefaultHeight, FrameRate: DefaultFrameRate,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
