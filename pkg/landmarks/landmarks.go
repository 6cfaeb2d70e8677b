// Package landmarks converts normalized face-mesh landmarks into the pixel-space
// eye geometry used for gaze and blink analysis.
package landmarks

import (
	"errors"
	"fmt"
	"math"
)

// MeshSize is the number of points produced by a face mesh with refined iris
// landmarks (468 face points + 2x5 iris points).
const MeshSize = 478

// Landmark indices into a refined face mesh.
var (
	// Eye corners as [outer-left, inner-right] in image space, used for gaze ratio.
	LeftEyeCorners  = [2]int{33, 133}
	RightEyeCorners = [2]int{362, 263}

	// Iris centers.
	LeftIris  = 468
	RightIris = 473

	// Six-point eye contours ordered p0..p5 for EAR:
	// p0/p3 horizontal corners, p1/p5 and p2/p4 vertical pairs.
	LeftEyeContour  = [6]int{33, 160, 158, 133, 153, 144}
	RightEyeContour = [6]int{362, 385, 387, 263, 373, 380}
)

// ErrTooFewLandmarks is returned when a set does not cover the indices we read.
var ErrTooFewLandmarks = errors.New("landmark set too small")

// Point is a 2D coordinate. Normalized points lie in [0,1]; pixel points are in
// image pixels.
type Point struct {
	X, Y float64
}

// Set is the ordered landmark output for a single face.
type Set []Point

// ToPixel maps a normalized point into a width x height image, truncating to
// whole pixels.
func ToPixel(p Point, width, height int) Point {
	return Point{
		X: math.Trunc(p.X * float64(width)),
		Y: math.Trunc(p.Y * float64(height)),
	}
}

// Pixel returns landmark idx in pixel coordinates.
func (s Set) Pixel(idx, width, height int) (Point, error) {
	if idx < 0 || idx >= len(s) {
		return Point{}, fmt.Errorf("%w: index %d, have %d", ErrTooFewLandmarks, idx, len(s))
	}
	return ToPixel(s[idx], width, height), nil
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Eye holds the pixel-space geometry of one eye.
type Eye struct {
	Corners [2]Point // [left, right] in image space
	Iris    Point
	Contour [6]Point
}

// Width is the horizontal span between the two corners.
func (e Eye) Width() float64 {
	return e.Corners[1].X - e.Corners[0].X
}

// EAR returns the eye aspect ratio of the contour.
func (e Eye) EAR() (float64, bool) {
	return EyeAspectRatio(e.Contour)
}

// EyeObservation is the per-frame geometry of both eyes.
type EyeObservation struct {
	Left  Eye
	Right Eye
}

// Observe extracts the eye geometry for both eyes from a landmark set.
func Observe(s Set, width, height int) (EyeObservation, error) {
	if len(s) < MeshSize {
		return EyeObservation{}, fmt.Errorf("%w: need %d, have %d", ErrTooFewLandmarks, MeshSize, len(s))
	}

	left, err := eye(s, LeftEyeCorners, LeftIris, LeftEyeContour, width, height)
	if err != nil {
		return EyeObservation{}, fmt.Errorf("left eye: %w", err)
	}
	right, err := eye(s, RightEyeCorners, RightIris, RightEyeContour, width, height)
	if err != nil {
		return EyeObservation{}, fmt.Errorf("right eye: %w", err)
	}

	return EyeObservation{Left: left, Right: right}, nil
}

func eye(s Set, corners [2]int, iris int, contour [6]int, width, height int) (Eye, error) {
	var e Eye
	var err error

	for i, idx := range corners {
		if e.Corners[i], err = s.Pixel(idx, width, height); err != nil {
			return Eye{}, err
		}
	}
	if e.Iris, err = s.Pixel(iris, width, height); err != nil {
		return Eye{}, err
	}
	for i, idx := range contour {
		if e.Contour[i], err = s.Pixel(idx, width, height); err != nil {
			return Eye{}, err
		}
	}
	return e, nil
}

// EyeAspectRatio computes (|p1-p5| + |p2-p4|) / (2 |p0-p3|).
// It reports false when the horizontal span is zero.
func EyeAspectRatio(p [6]Point) (float64, bool) {
	horizontal := Distance(p[0], p[3])
	if horizontal == 0 {
		return 0, false
	}
	vertical := Distance(p[1], p[5]) + Distance(p[2], p[4])
	return vertical / (2 * horizontal), true
}
