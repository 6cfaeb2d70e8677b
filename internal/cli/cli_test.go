package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslashibe/go-attention/internal/config"
)

func TestRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "gaze")

	for _, flag := range []string{"config", "env-file", "log-level", "debug", "debug-frames"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRunFlags_Apply(t *testing.T) {
	flags := &runFlags{}
	cmd := newRunCmd(&rootFlags{})
	_ = cmd.Flags().Set("camera", "2")
	_ = cmd.Flags().Set("headless", "true")
	flags.device = 2
	flags.headless = true

	cfg := config.Default()
	require.NoError(t, flags.apply(cmd, cfg))

	assert.Equal(t, 2, cfg.Camera.Device)
	assert.True(t, cfg.Camera.Headless)
	assert.Equal(t, config.Default().Alert.LogFile, cfg.Alert.LogFile, "unset flags leave config alone")
}

func TestRunFlags_ApplyRejectsInvalid(t *testing.T) {
	flags := &runFlags{device: -1}
	cmd := newRunCmd(&rootFlags{})
	_ = cmd.Flags().Set("camera", "-1")

	assert.Error(t, flags.apply(cmd, config.Default()))
}

func TestRootFlags_LoadAppliesLogLevel(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "attention.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	f := &rootFlags{configFile: path, envFile: filepath.Join(dir, "none.env"), logLevel: "debug"}
	cfg, err := f.load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	f.logLevel = ""
	cfg, err = f.load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
