// Package camera opens a local webcam as the frame source and shows annotated
// frames in an OpenCV window.
package camera

// Config holds webcam and window settings.
type Config struct {
	Device    int    `yaml:"device" validate:"gte=0"`                  // Video device index
	Preset    string `yaml:"preset"`                                  // Optional resolution preset, see Presets
	Width     int    `yaml:"width" validate:"gte=160,lte=3840"`       // Requested frame width
	Height    int    `yaml:"height" validate:"gte=120,lte=2160"`      // Requested frame height
	Framerate int    `yaml:"framerate" validate:"gte=1,lte=120"`      // Requested FPS
	Window    string `yaml:"window" validate:"required_unless=Headless true"`
	Headless  bool   `yaml:"headless"` // No window; stop by signal only
}

// DefaultConfig returns the first webcam at VGA.
func DefaultConfig() Config {
	return Config{
		Device:    0,
		Width:     640,
		Height:    480,
		Framerate: 30,
		Window:    "Gaze Tracking",
	}
}
