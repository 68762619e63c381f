package config

import "sort"

// Presets are ready-made Lorenz regimes. Entries are copied out on access,
// never handed to callers directly.
var Presets = map[string]Config{
	"classic": {
		S: 10.0, B: 2.6666, R: 28.0,
		Zoom: 1.0, FPS: DefaultFPS,
	},
	"decay": {
		// below the first bifurcation the orbit falls into the origin,
		// so start zoomed well in
		S: 10.0, B: 2.6666, R: 0.5,
		Zoom: 0.05, FPS: DefaultFPS,
	},
	"cycle": {
		// periodic window above the chaotic range
		S: 10.0, B: 8.0 / 3.0, R: 99.65,
		Azimuth: 45, Elevation: -60, Zoom: 2.2, FPS: DefaultFPS,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
