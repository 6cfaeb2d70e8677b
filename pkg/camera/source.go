package camera

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	// ErrSourceUnavailable means the webcam could not be opened.
	ErrSourceUnavailable = errors.New("camera unavailable")
	// ErrEndOfStream means a frame could not be read.
	ErrEndOfStream = errors.New("end of stream")
)

// Frame is a captured BGR image.
type Frame struct {
	Mat gocv.Mat
}

// Size returns width and height in pixels.
func (f *Frame) Size() (width, height int) {
	return f.Mat.Cols(), f.Mat.Rows()
}

// Source reads frames from a webcam. The returned frame is reused by the
// next Read.
type Source struct {
	capture *gocv.VideoCapture
	frame   Frame
	device  int
}

// Open opens the configured webcam.
func Open(cfg Config) (*Source, error) {
	capture, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrSourceUnavailable, cfg.Device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: device %d", ErrSourceUnavailable, cfg.Device)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	capture.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))

	return &Source{
		capture: capture,
		frame:   Frame{Mat: gocv.NewMat()},
		device:  cfg.Device,
	}, nil
}

// Read captures the next frame.
func (s *Source) Read() (*Frame, error) {
	if ok := s.capture.Read(&s.frame.Mat); !ok || s.frame.Mat.Empty() {
		return nil, fmt.Errorf("%w: device %d", ErrEndOfStream, s.device)
	}
	return &s.frame, nil
}

// Close releases the frame buffer and the device.
func (s *Source) Close() error {
	return errors.Join(s.frame.Mat.Close(), s.capture.Close())
}
