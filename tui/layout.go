package tui

import (
	"math"

	"iconcloud/cloud"
)

const (
	// cellAspect is the height/width ratio of a terminal cell.
	cellAspect = 2.0

	hudRows    = 2
	minWidth   = 16
	minHeight  = 9
	labelWidth = 14
)

// Layout maps field units to terminal cells for one screen size.
type Layout struct {
	CenterX, CenterY int
	// Scale is rows per field unit; columns per unit is Scale*cellAspect.
	Scale float64
	// Reach is the pointer-sensitive half extent in field units.
	Reach float64
}

// NewLayout fits the field of pr into a w x h screen below the HUD row.
func NewLayout(w, h int, pr cloud.Projector) Layout {
	l := Layout{
		CenterX: w / 2,
		CenterY: 1 + (h-hudRows)/2,
		Reach:   pr.Radius + pr.IconSize/2,
	}
	if w < minWidth || h < minHeight || pr.Radius <= 0 {
		return l
	}
	rows := math.Min(float64(h-hudRows)/2-1, (float64(w)/2-labelWidth/2)/cellAspect)
	if rows > 0 {
		l.Scale = rows / pr.Radius
	}
	return l
}

// Visible reports whether icons can be drawn at all.
func (l Layout) Visible() bool { return l.Scale > 0 }

// ToScreen converts a rendered icon position to a cell.
func (l Layout) ToScreen(icon cloud.RenderedIcon) (int, int) {
	x := l.CenterX + int(math.Round(icon.ScreenX*l.Scale*cellAspect))
	y := l.CenterY + int(math.Round(icon.ScreenY*l.Scale))
	return x, y
}

// ToPointer converts a mouse cell to a pointer offset in field units. The
// pointer is active only inside the field's bounding box.
func (l Layout) ToPointer(mx, my int) cloud.PointerState {
	if !l.Visible() {
		return cloud.PointerState{}
	}
	dx := float64(mx-l.CenterX) / (l.Scale * cellAspect)
	dy := float64(my-l.CenterY) / l.Scale
	if math.Abs(dx) > l.Reach || math.Abs(dy) > l.Reach {
		return cloud.PointerState{}
	}
	return cloud.PointerState{DX: dx, DY: dy, Active: true}
}
