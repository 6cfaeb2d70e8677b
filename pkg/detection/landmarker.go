package detection

import (
	"errors"
	"fmt"

	"github.com/teslashibe/go-attention/pkg/camera"
	"github.com/teslashibe/go-attention/pkg/landmarks"
)

// Landmarker finds the monitored face and returns its landmark set.
type Landmarker struct {
	faces  *YuNetDetector
	mesh   *FaceMesh
	config Config
}

// NewLandmarker loads both models.
func NewLandmarker(cfg Config) (*Landmarker, error) {
	faces, err := NewYuNet(cfg)
	if err != nil {
		return nil, fmt.Errorf("face detector: %w", err)
	}

	mesh, err := NewFaceMesh(cfg)
	if err != nil {
		faces.Close()
		return nil, fmt.Errorf("face mesh: %w", err)
	}

	return &Landmarker{faces: faces, mesh: mesh, config: cfg}, nil
}

// Detect returns the landmarks of the best face in frame, or false when no
// face was found.
func (l *Landmarker) Detect(frame *camera.Frame) (landmarks.Set, bool, error) {
	dets, err := l.faces.Detect(frame.Mat)
	if err != nil {
		return nil, false, err
	}

	best := SelectBest(dets)
	if best == nil {
		return nil, false, nil
	}

	w, h := frame.Size()
	roi := CropRegion(*best, w, h, l.config.CropScale)
	if roi.Empty() {
		return nil, false, nil
	}

	set, err := l.mesh.Landmarks(frame.Mat, roi)
	if err != nil {
		return nil, false, err
	}
	return set, true, nil
}

// Close releases both models.
func (l *Landmarker) Close() error {
	return errors.Join(l.faces.Close(), l.mesh.Close())
}
