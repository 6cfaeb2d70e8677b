package detection

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-attention/pkg/landmarks"
)

// FaceMesh runs a face-mesh ONNX network on a face crop.
type FaceMesh struct {
	net       gocv.Net
	config    Config
	mu        sync.Mutex
	inputSize image.Point
}

// NewFaceMesh loads the face-mesh model.
func NewFaceMesh(cfg Config) (*FaceMesh, error) {
	if _, err := os.Stat(cfg.MeshModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.MeshModelPath)
	}

	net := gocv.ReadNetFromONNX(cfg.MeshModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load face mesh model from %s", cfg.MeshModelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &FaceMesh{
		net:       net,
		config:    cfg,
		inputSize: image.Pt(cfg.MeshInputSize, cfg.MeshInputSize),
	}, nil
}

// Landmarks returns normalized landmarks for the face inside roi.
func (m *FaceMesh) Landmarks(img gocv.Mat, roi image.Rectangle) (landmarks.Set, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if roi.Empty() {
		return nil, fmt.Errorf("empty face region")
	}

	crop := img.Region(roi)
	defer crop.Close()

	blob := gocv.BlobFromImage(crop, 1.0/255.0, m.inputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	m.net.SetInput(blob, "")

	output := m.net.Forward(m.config.MeshOutput)
	defer output.Close()

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read mesh output: %w", err)
	}

	return decodeMesh(data, roi, m.config.MeshInputSize, img.Cols(), img.Rows())
}

// decodeMesh maps (x, y, z) triples in network input pixels back to
// normalized frame coordinates.
func decodeMesh(data []float32, roi image.Rectangle, inputSize, imgW, imgH int) (landmarks.Set, error) {
	if len(data) < landmarks.MeshSize*3 {
		return nil, fmt.Errorf("mesh output has %d values, need %d", len(data), landmarks.MeshSize*3)
	}

	sx := float64(roi.Dx()) / float64(inputSize)
	sy := float64(roi.Dy()) / float64(inputSize)

	set := make(landmarks.Set, landmarks.MeshSize)
	for i := range set {
		x := float64(data[i*3])*sx + float64(roi.Min.X)
		y := float64(data[i*3+1])*sy + float64(roi.Min.Y)
		set[i] = landmarks.Point{X: x / float64(imgW), Y: y / float64(imgH)}
	}
	return set, nil
}

// Close releases the network.
func (m *FaceMesh) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.net.Close()
}
