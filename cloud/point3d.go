// =======================
// cloud/point3d.go
// =======================

package cloud

import "math"

// Point3D holds a 3D coordinate on (or near) the unit sphere.
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// RotateY rotates the point around the Y axis.
func (p Point3D) RotateY(angle float64) Point3D {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// RotateX rotates the point around the X axis.
func (p Point3D) RotateX(angle float64) Point3D {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point3D{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// Rotate applies the Y rotation first, then the X rotation to its result.
func (p Point3D) Rotate(r Rotation) Point3D {
	return p.RotateY(r.AngleY).RotateX(r.AngleX)
}

// Norm returns the euclidean length.
func (p Point3D) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point3D) finite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
