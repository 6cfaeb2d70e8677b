// Package cli defines the attention command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/teslashibe/go-attention/internal/config"
	"github.com/teslashibe/go-attention/internal/log"
	"github.com/teslashibe/go-attention/pkg/debug"
)

type rootFlags struct {
	configFile  string
	envFile     string
	logLevel    string
	debug       bool
	debugFrames bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "attention",
		Short: "Webcam attention monitor",
		Long: `Watches a webcam for face presence, gaze direction and blinks, and raises
rate-limited alerts when attention drops: face out of view, looking away,
or rapid side-to-side glancing. Alerts go to the console and to an
append-only log file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Enabled = flags.debug
			debug.Frames = flags.debugFrames
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is ./attention.yaml)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "dotenv file with ATTN_* overrides (default is ./.env)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "print debug output")
	root.PersistentFlags().BoolVar(&flags.debugFrames, "debug-frames", false, "print eye and iris positions for every frame")

	root.AddCommand(newRunCmd(flags), newGazeCmd(flags))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the configuration and applies the persistent flag overrides.
func (f *rootFlags) load() (*config.Monitor, error) {
	cfg, err := config.Load(config.Options{File: f.configFile, EnvFile: f.envFile})
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func initLogging(cfg *config.Monitor) {
	log.Init(cfg.LogLevel)
}
