package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"iconcloud/cloud"
)

func TestNewLayout(t *testing.T) {
	pr := cloud.Projector{Radius: 200, IconSize: 40}
	l := NewLayout(100, 40, pr)
	assert.Equal(t, 50, l.CenterX)
	assert.Equal(t, 20, l.CenterY)
	assert.True(t, l.Visible())
	assert.Equal(t, 220.0, l.Reach)

	// the field fits vertically and horizontally
	x, y := l.ToScreen(cloud.RenderedIcon{ScreenX: 200, ScreenY: -200})
	assert.Less(t, x, 100)
	assert.GreaterOrEqual(t, y, 1)
}

func TestNewLayout_TooSmall(t *testing.T) {
	pr := cloud.Projector{Radius: 200, IconSize: 40}
	assert.False(t, NewLayout(10, 5, pr).Visible())
	assert.False(t, NewLayout(100, 40, cloud.Projector{}).Visible())
}

func TestLayout_ToPointer(t *testing.T) {
	pr := cloud.Projector{Radius: 200, IconSize: 40}
	l := NewLayout(100, 40, pr)

	center := l.ToPointer(l.CenterX, l.CenterY)
	assert.True(t, center.Active)
	assert.Equal(t, 0.0, center.DX)
	assert.Equal(t, 0.0, center.DY)

	right := l.ToPointer(l.CenterX+10, l.CenterY-4)
	assert.True(t, right.Active)
	assert.Greater(t, right.DX, 0.0)
	assert.Less(t, right.DY, 0.0)

	// a point projected to a cell maps back near its field offset
	x, y := l.ToScreen(cloud.RenderedIcon{ScreenX: 100, ScreenY: 50})
	back := l.ToPointer(x, y)
	assert.InDelta(t, 100, back.DX, 1/(l.Scale*cellAspect))
	assert.InDelta(t, 50, back.DY, 1/l.Scale)

	outside := l.ToPointer(0, 0)
	assert.False(t, outside.Active)
}
