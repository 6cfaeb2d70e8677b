// Package detection extracts face-mesh landmarks from camera frames using
// OpenCV: YuNet finds the face, a face-mesh ONNX network places 478
// landmarks (iris included) inside the face region.
package detection

import (
	"errors"
	"image"
	"math"
)

// ErrModelNotFound is returned when a model file is missing.
var ErrModelNotFound = errors.New("model file not found")

// Detection represents a detected face
type Detection struct {
	X, Y       float64 // Top-left corner (0-1 normalized)
	W, H       float64 // Width and height (0-1 normalized)
	Confidence float64 // Detection confidence (0-1)
}

// Center returns the center point of the detection
func (d Detection) Center() (x, y float64) {
	return d.X + d.W/2, d.Y + d.H/2
}

// Area returns the area of the bounding box
func (d Detection) Area() float64 {
	return d.W * d.H
}

// Config holds detector configuration
type Config struct {
	FaceModelPath    string  `yaml:"face_model" validate:"required"`    // YuNet ONNX
	MeshModelPath    string  `yaml:"mesh_model" validate:"required"`    // Face mesh ONNX (478 points)
	ConfidenceThresh float64 `yaml:"confidence" validate:"gt=0,lte=1"`  // Minimum face score
	InputWidth       int     `yaml:"input_width" validate:"gt=0"`       // YuNet initial input width
	InputHeight      int     `yaml:"input_height" validate:"gt=0"`      // YuNet initial input height
	MeshInputSize    int     `yaml:"mesh_input_size" validate:"gt=0"`   // Square mesh input side
	MeshOutput       string  `yaml:"mesh_output"`                       // Landmark output layer; empty = default
	CropScale        float64 `yaml:"crop_scale" validate:"gte=1,lte=3"` // Face box enlargement before meshing
}

// DefaultConfig returns production defaults
func DefaultConfig() Config {
	return Config{
		FaceModelPath:    "models/face_detection_yunet.onnx",
		MeshModelPath:    "models/face_landmarks_detector.onnx",
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,
		MeshInputSize:    256,
		CropScale:        1.5,
	}
}

// SelectBest picks the face to monitor when several are found.
// Priority: confidence * 0.7 + relative area * 0.3
func SelectBest(dets []Detection) *Detection {
	if len(dets) == 0 {
		return nil
	}

	if len(dets) == 1 {
		return &dets[0]
	}

	// Find max area for normalization
	maxArea := 0.0
	for _, d := range dets {
		if d.Area() > maxArea {
			maxArea = d.Area()
		}
	}

	bestScore := -1.0
	var best *Detection

	for i := range dets {
		score := dets[i].Confidence*0.7 + (dets[i].Area()/maxArea)*0.3
		if score > bestScore {
			bestScore = score
			best = &dets[i]
		}
	}

	return best
}

// CropRegion returns the square pixel region around d, enlarged by scale and
// clipped to the image. The result is empty when d lies outside the image.
func CropRegion(d Detection, imgW, imgH int, scale float64) image.Rectangle {
	cx, cy := d.Center()
	side := math.Max(d.W*float64(imgW), d.H*float64(imgH)) * scale

	x0 := int(math.Round(cx*float64(imgW) - side/2))
	y0 := int(math.Round(cy*float64(imgH) - side/2))
	s := int(math.Round(side))

	return image.Rect(x0, y0, x0+s, y0+s).Intersect(image.Rect(0, 0, imgW, imgH))
}
