package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-attention/internal/config"
	"github.com/teslashibe/go-attention/pkg/camera"
	"github.com/teslashibe/go-attention/pkg/detection"
	"github.com/teslashibe/go-attention/pkg/monitor"
)

func newGazeCmd(root *rootFlags) *cobra.Command {
	var device int

	cmd := &cobra.Command{
		Use:   "gaze",
		Short: "Preview gaze direction without attention tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("camera") {
				cfg.Camera.Device = device
			}
			initLogging(cfg)
			return runPreview(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&device, "camera", 0, "video device index")
	return cmd
}

func runPreview(ctx context.Context, cfg *config.Monitor) error {
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

	display := camera.NewDisplay("Eye Tracking")
	defer display.Close()

	fmt.Println("Gaze preview started. Press 'q' to quit.")
	return monitor.NewPreview[*camera.Frame](src, lm, display, cfg.Gaze).Run(ctx)
}
