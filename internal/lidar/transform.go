package lidar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// matrixValidationTolerance is the tolerance for the rigid-transform checks.
const matrixValidationTolerance = 0.01

// PoseError reports a numerically ill-formed pose matrix.
type PoseError struct {
	Message string
}

func (e *PoseError) Error() string {
	return fmt.Sprintf("invalid pose transform: %s", e.Message)
}

// Pose is a 4x4 homogeneous transform mapping sensor-local coordinates to
// the frame used by the environment index.
type Pose struct {
	m *mat.Dense
}

// IdentityPose returns the identity transform.
func IdentityPose() *Pose {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return &Pose{m: m}
}

// NewPose builds a pose from 16 row-major values. The matrix must be a
// proper rigid transform: finite entries, orthonormal rotation block with
// determinant close to 1, last row [0 0 0 1].
func NewPose(values [16]float64) (*Pose, error) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &PoseError{Message: "matrix contains non-finite values"}
		}
	}

	m := mat.NewDense(4, 4, values[:])

	// Rotation block determinant must be ~1 (no reflection, no scaling).
	rot := m.Slice(0, 3, 0, 3)
	if det := mat.Det(rot); math.Abs(det-1) > matrixValidationTolerance {
		return nil, &PoseError{Message: fmt.Sprintf("rotation determinant %.4f, expected 1", det)}
	}

	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 ||
		math.Abs(m.At(3, 3)-1) > matrixValidationTolerance {
		return nil, &PoseError{Message: "last row must be [0 0 0 1]"}
	}

	return &Pose{m: m}, nil
}

// Apply transforms a single point.
func (p *Pose) Apply(pt Point3) Point3 {
	x := p.m.At(0, 0)*pt.X + p.m.At(0, 1)*pt.Y + p.m.At(0, 2)*pt.Z + p.m.At(0, 3)
	y := p.m.At(1, 0)*pt.X + p.m.At(1, 1)*pt.Y + p.m.At(1, 2)*pt.Z + p.m.At(1, 3)
	z := p.m.At(2, 0)*pt.X + p.m.At(2, 1)*pt.Y + p.m.At(2, 2)*pt.Z + p.m.At(2, 3)
	return Point3{X: x, Y: y, Z: z}
}

// ApplyInPlace transforms a batch of points in place.
func (p *Pose) ApplyInPlace(points []Point3) {
	for i := range points {
		points[i] = p.Apply(points[i])
	}
}
