// =======================
// cloud/sphere.go
// =======================

package cloud

import (
	"fmt"
	"math"
)

// GoldenAngle is π(3-√5), the angular step between consecutive lattice points.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// FibonacciSphere distributes n points over the unit sphere using the
// golden-angle lattice. Y runs from 1 (first point) to -1 (last point).
// A single point is placed on the north pole.
func FibonacciSphere(n int) ([]Point3D, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n == 1 {
		return []Point3D{{X: 0, Y: 1, Z: 0}}, nil
	}

	points := make([]Point3D, n)
	last := float64(n - 1)
	for i := range points {
		y := 1 - (float64(i)/last)*2
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := GoldenAngle * float64(i)
		points[i] = Point3D{
			X: math.Cos(theta) * radius,
			Y: y,
			Z: math.Sin(theta) * radius,
		}
	}
	return points, nil
}
