package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-attention/internal/config"
	"github.com/teslashibe/go-attention/internal/log"
	"github.com/teslashibe/go-attention/pkg/alert"
	"github.com/teslashibe/go-attention/pkg/attention"
	"github.com/teslashibe/go-attention/pkg/camera"
	"github.com/teslashibe/go-attention/pkg/detection"
	"github.com/teslashibe/go-attention/pkg/monitor"
)

type runFlags struct {
	device   int
	alertLog string
	headless bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start monitoring",
		Long: `Opens the webcam and monitors attention until 'q' or ESC is pressed in the
window, or the process receives SIGINT/SIGTERM.`,
		Example: `  # Monitor with defaults (uses ./attention.yaml when present)
  attention run

  # Second camera, alerts to a custom file, no window
  attention run --camera 1 --alert-log focus.txt --headless`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			initLogging(cfg)
			return runMonitor(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&flags.device, "camera", 0, "video device index")
	cmd.Flags().StringVar(&flags.alertLog, "alert-log", "", "append-only alert log file")
	cmd.Flags().BoolVar(&flags.headless, "headless", false, "run without a window")
	return cmd
}

// apply copies explicitly set flags into cfg and revalidates.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Monitor) error {
	if cmd.Flags().Changed("camera") {
		cfg.Camera.Device = f.device
	}
	if cmd.Flags().Changed("alert-log") {
		cfg.Alert.LogFile = f.alertLog
	}
	if cmd.Flags().Changed("headless") {
		cfg.Camera.Headless = f.headless
	}
	return cfg.Validate()
}

func runMonitor(ctx context.Context, cfg *config.Monitor) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := camera.Open(cfg.Camera)
	if err != nil {
		return err
	}
	defer src.Close()

	lm, err := detection.NewLandmarker(cfg.Detection)
	if err != nil {
		return err
	}
	defer lm.Close()

	sinks := []alert.Sink{alert.Stdout()}
	file, err := alert.OpenFile(cfg.Alert.LogFile)
	if err != nil {
		log.Warn("alert log unavailable, console only", "error", err)
	} else {
		defer file.Close()
		sinks = append(sinks, file)
	}
	alerts := alert.NewLogger(cfg.Alert, sinks)

	opts := []monitor.Option[*camera.Frame]{monitor.WithThresholds[*camera.Frame](cfg.Gaze)}
	if !cfg.Camera.Headless {
		display := camera.NewDisplay(cfg.Camera.Window)
		defer display.Close()
		opts = append(opts, monitor.WithDisplay[*camera.Frame](display))
	}

	session := monitor.NewSession[*camera.Frame](src, lm, attention.NewEngine(cfg.Attention), alerts, opts...)

	if cfg.Camera.Headless {
		fmt.Println("Webcam stream started. Press Ctrl+C to quit.")
	} else {
		fmt.Println("Webcam stream started. Press 'q' to quit.")
	}

	err = session.Run(ctx)

	sum := session.Summary()
	log.Info("session finished",
		"session", sum.ID.String(),
		"frames", sum.Frames,
		"duration", sum.Duration.Round(time.Second).String(),
		"blinks", sum.BlinkTotal,
		"attention", sum.Score,
		"alerts_emitted", sum.Emitted,
		"alerts_suppressed", sum.Suppressed,
	)
	fmt.Println("Webcam stream stopped.")
	return err
}
