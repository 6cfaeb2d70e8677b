package detection

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslashibe/go-attention/pkg/landmarks"
)

func TestDetection_Center(t *testing.T) {
	tests := []struct {
		name    string
		det     Detection
		expectX float64
		expectY float64
	}{
		{"center of image", Detection{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}, 0.5, 0.5},
		{"top left corner", Detection{X: 0, Y: 0, W: 0.2, H: 0.2}, 0.1, 0.1},
		{"bottom right corner", Detection{X: 0.8, Y: 0.8, W: 0.2, H: 0.2}, 0.9, 0.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.det.Center()
			assert.InDelta(t, tc.expectX, x, 1e-9)
			assert.InDelta(t, tc.expectY, y, 1e-9)
		})
	}
}

func TestDetection_Area(t *testing.T) {
	assert.InDelta(t, 0.25, Detection{W: 0.5, H: 0.5}.Area(), 1e-4)
	assert.InDelta(t, 0.02, Detection{W: 0.1, H: 0.2}.Area(), 1e-4)
	assert.InDelta(t, 1.0, Detection{W: 1, H: 1}.Area(), 1e-4)
}

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name       string
		detections []Detection
		expectNil  bool
		expectIdx  int
	}{
		{
			name:       "empty list",
			detections: []Detection{},
			expectNil:  true,
		},
		{
			name: "single detection",
			detections: []Detection{
				{X: 0.4, Y: 0.4, W: 0.2, H: 0.2, Confidence: 0.9},
			},
			expectIdx: 0,
		},
		{
			name: "high confidence beats larger area",
			detections: []Detection{
				{X: 0.0, Y: 0.0, W: 0.4, H: 0.4, Confidence: 0.5},
				{X: 0.3, Y: 0.3, W: 0.2, H: 0.2, Confidence: 0.95},
			},
			// 0.95*0.7 + 0.25*0.3 = 0.74 vs 0.5*0.7 + 1.0*0.3 = 0.65
			expectIdx: 1,
		},
		{
			name: "similar confidence picks larger",
			detections: []Detection{
				{X: 0.0, Y: 0.0, W: 0.5, H: 0.5, Confidence: 0.8},
				{X: 0.3, Y: 0.3, W: 0.1, H: 0.1, Confidence: 0.8},
			},
			expectIdx: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			best := SelectBest(tc.detections)
			if tc.expectNil {
				assert.Nil(t, best)
				return
			}
			require.NotNil(t, best)
			assert.Equal(t, tc.detections[tc.expectIdx], *best)
		})
	}
}

func TestCropRegion(t *testing.T) {
	tests := []struct {
		name   string
		det    Detection
		scale  float64
		expect image.Rectangle
	}{
		{
			name:   "square face enlarged",
			det:    Detection{X: 0.4, Y: 0.4, W: 0.2, H: 0.2},
			scale:  1.5,
			expect: image.Rect(35, 35, 65, 65),
		},
		{
			name:   "clipped at image edge",
			det:    Detection{X: 0, Y: 0, W: 0.2, H: 0.2},
			scale:  2,
			expect: image.Rect(0, 0, 30, 30),
		},
		{
			name:   "outside image",
			det:    Detection{X: 2, Y: 2, W: 0.1, H: 0.1},
			scale:  1,
			expect: image.Rectangle{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CropRegion(tc.det, 100, 100, tc.scale)
			if tc.expect.Empty() {
				assert.True(t, got.Empty())
				return
			}
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestDecodeMesh(t *testing.T) {
	data := make([]float32, landmarks.MeshSize*3)
	// landmark 0 at the middle of the network input
	data[0], data[1] = 128, 128
	// last landmark at the input origin
	last := (landmarks.MeshSize - 1) * 3
	data[last], data[last+1] = 0, 0

	roi := image.Rect(100, 50, 300, 250) // 200x200 crop
	set, err := decodeMesh(data, roi, 256, 400, 300)
	require.NoError(t, err)
	require.Len(t, set, landmarks.MeshSize)

	assert.InDelta(t, 200.0/400, set[0].X, 1e-9)
	assert.InDelta(t, 150.0/300, set[0].Y, 1e-9)
	assert.InDelta(t, 100.0/400, set[landmarks.MeshSize-1].X, 1e-9)
	assert.InDelta(t, 50.0/300, set[landmarks.MeshSize-1].Y, 1e-9)
}

func TestDecodeMesh_ShortOutput(t *testing.T) {
	_, err := decodeMesh(make([]float32, 468*3), image.Rect(0, 0, 10, 10), 256, 100, 100)
	assert.Error(t, err)
}

func TestNewLandmarker_MissingModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FaceModelPath = "does/not/exist.onnx"

	_, err := NewLandmarker(cfg)
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.FaceModelPath)
	assert.NotEmpty(t, cfg.MeshModelPath)
	assert.Greater(t, cfg.ConfidenceThresh, 0.0)
	assert.LessOrEqual(t, cfg.ConfidenceThresh, 1.0)
	assert.Positive(t, cfg.InputWidth)
	assert.Positive(t, cfg.InputHeight)
	assert.Positive(t, cfg.MeshInputSize)
	assert.GreaterOrEqual(t, cfg.CropScale, 1.0)
}
