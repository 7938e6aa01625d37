// =======================
// cloud/projection.go
// =======================

package cloud

import (
	"fmt"
	"math"
)

// Projector maps rotated points to orthographic screen placement with depth
// cues. Z only drives opacity, size and paint order.
type Projector struct {
	Radius   float64
	IconSize float64
}

// NewProjector validates the field radius and base icon size.
func NewProjector(radius, iconSize float64) (Projector, error) {
	if !isFinite(radius) || !isFinite(iconSize) || radius < 0 || iconSize < 0 {
		return Projector{}, fmt.Errorf("%w: radius=%v icon_size=%v", ErrInvalidSize, radius, iconSize)
	}
	return Projector{Radius: radius, IconSize: iconSize}, nil
}

// Project computes the RenderedIcon for the i-th rotated point.
func (pr Projector) Project(i int, p Point3D) RenderedIcon {
	depth := math.Min(1, math.Max(0, (p.Z+1)/2))
	scale := 0.6 + depth*0.4
	return RenderedIcon{
		Index:      i,
		ScreenX:    p.X * pr.Radius,
		ScreenY:    p.Y * pr.Radius,
		Depth:      depth,
		Scale:      scale,
		Size:       pr.IconSize * scale,
		Opacity:    0.3 + depth*0.7,
		StackOrder: int(math.Round(depth * 100)),
	}
}

// ProjectAll projects an index-aligned point sequence into dst, growing it
// as needed.
func (pr Projector) ProjectAll(dst []RenderedIcon, points []Point3D) []RenderedIcon {
	dst = dst[:0]
	for i, p := range points {
		dst = append(dst, pr.Project(i, p))
	}
	return dst
}
