// Package config loads the monitor configuration from defaults, an optional
// YAML file, an optional .env file and ATTN_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/teslashibe/go-attention/pkg/alert"
	"github.com/teslashibe/go-attention/pkg/attention"
	"github.com/teslashibe/go-attention/pkg/camera"
	"github.com/teslashibe/go-attention/pkg/detection"
	"github.com/teslashibe/go-attention/pkg/gaze"
)

// DefaultFiles are searched in order when no config file is given.
var DefaultFiles = []string{"attention.yaml", "attention.yml"}

// Monitor is the full configuration of a monitoring session.
type Monitor struct {
	LogLevel  string           `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Attention attention.Config `yaml:"attention"`
	Gaze      gaze.Thresholds  `yaml:"gaze"`
	Alert     alert.Config     `yaml:"alert"`
	Camera    camera.Config    `yaml:"camera"`
	Detection detection.Config `yaml:"detection"`
}

// Default returns the compiled-in configuration.
func Default() *Monitor {
	return &Monitor{
		LogLevel:  "info",
		Attention: attention.DefaultConfig(),
		Gaze:      gaze.DefaultThresholds(),
		Alert:     alert.DefaultConfig(),
		Camera:    camera.DefaultConfig(),
		Detection: detection.DefaultConfig(),
	}
}

// Options selects the files Load reads. Empty fields use the defaults.
type Options struct {
	File    string // YAML file; empty searches DefaultFiles
	EnvFile string // dotenv file; empty means ".env", missing is fine
}

// Load builds and validates the configuration.
func Load(opts Options) (*Monitor, error) {
	cfg := Default()

	if err := loadYAML(cfg, opts.File); err != nil {
		return nil, err
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Camera.ApplyPreset(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(cfg *Monitor, path string) error {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
		if path == "" {
			// No config file found, keep defaults
			return nil
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (m *Monitor) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s (%v) violates %s", fe.Namespace(), fe.Value(), rule))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
