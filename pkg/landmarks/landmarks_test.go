package landmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPixel(t *testing.T) {
	tests := []struct {
		name   string
		in     Point
		w, h   int
		expect Point
	}{
		{"origin", Point{0, 0}, 640, 480, Point{0, 0}},
		{"center", Point{0.5, 0.5}, 640, 480, Point{320, 240}},
		{"truncates", Point{0.2999, 0.1001}, 100, 100, Point{29, 10}},
		{"far corner", Point{1, 1}, 1920, 1080, Point{1920, 1080}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ToPixel(tc.in, tc.w, tc.h))
		})
	}
}

func TestSet_PixelOutOfRange(t *testing.T) {
	s := Set{{0.1, 0.1}}

	_, err := s.Pixel(3, 100, 100)
	assert.ErrorIs(t, err, ErrTooFewLandmarks)

	_, err = s.Pixel(-1, 100, 100)
	assert.ErrorIs(t, err, ErrTooFewLandmarks)
}

func TestEyeAspectRatio(t *testing.T) {
	tests := []struct {
		name   string
		pts    [6]Point
		expect float64
		ok     bool
	}{
		{
			name: "open eye",
			// width 10, both vertical pairs 4 apart
			pts:    [6]Point{{0, 0}, {3, -2}, {7, -2}, {10, 0}, {7, 2}, {3, 2}},
			expect: 0.4,
			ok:     true,
		},
		{
			name:   "closed eye",
			pts:    [6]Point{{0, 0}, {3, 0}, {7, 0}, {10, 0}, {7, 0}, {3, 0}},
			expect: 0,
			ok:     true,
		},
		{
			name: "zero width",
			pts:  [6]Point{{5, 0}, {5, -2}, {5, -2}, {5, 0}, {5, 2}, {5, 2}},
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ear, ok := EyeAspectRatio(tc.pts)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.expect, ear, 1e-9)
			}
		})
	}
}

func TestObserve(t *testing.T) {
	s := make(Set, MeshSize)
	s[LeftEyeCorners[0]] = Point{0.125, 0.5}
	s[LeftEyeCorners[1]] = Point{0.25, 0.5}
	s[LeftIris] = Point{0.1875, 0.5}
	s[RightEyeCorners[0]] = Point{0.375, 0.5}
	s[RightEyeCorners[1]] = Point{0.5, 0.5}
	s[RightIris] = Point{0.3125, 0.5}

	obs, err := Observe(s, 1000, 1000)
	require.NoError(t, err)

	assert.Equal(t, Point{125, 500}, obs.Left.Corners[0])
	assert.Equal(t, Point{250, 500}, obs.Left.Corners[1])
	assert.Equal(t, Point{187, 500}, obs.Left.Iris)
	assert.Equal(t, 125.0, obs.Left.Width())
	assert.Equal(t, Point{312, 500}, obs.Right.Iris)
	// contour p0 shares the outer corner index
	assert.Equal(t, obs.Left.Corners[0], obs.Left.Contour[0])
	assert.Equal(t, obs.Right.Corners[1], obs.Right.Contour[3])
}

func TestObserve_TooFewLandmarks(t *testing.T) {
	_, err := Observe(make(Set, 468), 640, 480)
	assert.ErrorIs(t, err, ErrTooFewLandmarks)
}
