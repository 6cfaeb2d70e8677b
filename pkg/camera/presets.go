package camera

import (
	"fmt"
	"sort"
)

// Preset names for common webcam resolutions
const (
	PresetVGA   = "vga"
	Preset720p  = "720p"
	Preset1080p = "1080p"
	PresetLow   = "low" // slow machines: QVGA at 15 fps
)

type resolution struct {
	width, height, fps int
}

var presets = map[string]resolution{
	PresetVGA:   {640, 480, 30},
	Preset720p:  {1280, 720, 30},
	Preset1080p: {1920, 1080, 30},
	PresetLow:   {320, 240, 15},
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites resolution and framerate from the named preset.
// An empty name leaves the config untouched.
func (c *Config) ApplyPreset() error {
	if c.Preset == "" {
		return nil
	}
	r, ok := presets[c.Preset]
	if !ok {
		return fmt.Errorf("unknown camera preset %q (have %v)", c.Preset, PresetNames())
	}
	c.Width, c.Height, c.Framerate = r.width, r.height, r.fps
	return nil
}
