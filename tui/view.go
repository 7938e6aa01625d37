package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"iconcloud/cloud"
)

// View paints frames of a Cloud onto a tcell screen and turns mouse input
// into pointer state.
type View struct {
	screen  tcell.Screen
	cloud   *cloud.Cloud
	mailbox *cloud.Mailbox

	mu     sync.Mutex
	paused bool
}

// NewView wraps an initialized screen.
func NewView(s tcell.Screen, c *cloud.Cloud, mb *cloud.Mailbox) *View {
	return &View{screen: s, cloud: c, mailbox: mb}
}

func (v *View) layout() Layout {
	w, h := v.screen.Size()
	return NewLayout(w, h, v.cloud.Projector())
}

// Draw paints one frame. It is the frame loop callback.
func (v *View) Draw(f cloud.Frame) {
	v.mu.Lock()
	paused := v.paused
	v.mu.Unlock()

	status := "idle"
	switch {
	case paused:
		status = "paused"
	case v.mailbox.Load().Active:
		status = "steering"
	}

	s := v.screen
	s.SetStyle(baseStyle)
	s.Clear()
	w, h := s.Size()

	drawText(s, 1, 0, hudStyle, "iconcloud | mouse:steer arrows:nudge space:pause r:reset q:quit")

	l := NewLayout(w, h, v.cloud.Projector())
	if l.Visible() {
		for _, icon := range f.PaintOrder() {
			if icon.Index >= len(f.Labels) {
				continue
			}
			label := f.Labels[icon.Index]
			x, y := l.ToScreen(icon)
			if y < 1 || y >= h-1 {
				continue
			}
			drawCentered(s, x, y, iconStyle(label, icon), iconText(label, icon))
		}
	}

	info := fmt.Sprintf("Labels: %d | Frame: %d | v=(%.4f, %.4f) | %s",
		len(f.Icons), f.Seq, f.State.Velocity.VX, f.State.Velocity.VY, status)
	drawText(s, 1, h-1, dimStyle, info)
	s.Show()
}

// Redraw repaints the cloud's current state without advancing it, e.g.
// after a resize or a reload while paused.
func (v *View) Redraw() {
	v.Draw(v.cloud.Snapshot())
}

// SetPaused toggles the paused marker in the status row.
func (v *View) SetPaused(paused bool) {
	v.mu.Lock()
	v.paused = paused
	v.mu.Unlock()
}

// HandleMouse publishes the pointer for a mouse position. Positions outside
// the field release the pointer.
func (v *View) HandleMouse(x, y int) {
	ptr := v.layout().ToPointer(x, y)
	if !ptr.Active {
		v.mailbox.Release()
		return
	}
	// offsets derived from cell coordinates are always finite
	_ = v.mailbox.Put(ptr)
}

// Release marks the pointer inactive, e.g. when the terminal loses focus.
func (v *View) Release() {
	v.mailbox.Release()
}
