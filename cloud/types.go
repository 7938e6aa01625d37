// =======================
// cloud/types.go
// =======================

package cloud

import (
	"errors"
	"time"
)

const (
	DefaultRadius   = 200.0
	DefaultIconSize = 40.0
	DefaultFPS      = 60

	// ReferenceFrame is the frame duration the smoothing factors are tuned for.
	ReferenceFrame = time.Second / 60

	// MaxFrameStep caps dt after a stall so the cloud never jumps.
	MaxFrameStep = 4.0
)

var (
	ErrInvalidCount  = errors.New("label count must be at least 1")
	ErrNonFinite     = errors.New("value is not finite")
	ErrInvalidSize   = errors.New("radius and icon size must be finite and non-negative")
	ErrInvalidLabel  = errors.New("invalid label")
	ErrLoopRunning   = errors.New("frame loop already running")
	ErrInvalidParams = errors.New("invalid rotation parameters")
)

// Rotation is the cumulative rotation around the X and Y axes. Angles are
// unbounded; trigonometric periodicity wraps them.
type Rotation struct {
	AngleX float64 `json:"angle_x" yaml:"angle_x"`
	AngleY float64 `json:"angle_y" yaml:"angle_y"`
}

// Velocity is the per-frame angular increment.
type Velocity struct {
	VX float64 `json:"vx" yaml:"vx"`
	VY float64 `json:"vy" yaml:"vy"`
}

// State is everything the engine carries from one frame to the next.
type State struct {
	Rotation Rotation `json:"rotation" yaml:"rotation"`
	Velocity Velocity `json:"velocity" yaml:"velocity"`
}

// RenderedIcon is the per-frame screen placement of one label.
type RenderedIcon struct {
	Index      int     `json:"index" yaml:"index"`
	ScreenX    float64 `json:"screen_x" yaml:"screen_x"`
	ScreenY    float64 `json:"screen_y" yaml:"screen_y"`
	Depth      float64 `json:"depth" yaml:"depth"`
	Scale      float64 `json:"scale" yaml:"scale"`
	Size       float64 `json:"size" yaml:"size"`
	Opacity    float64 `json:"opacity" yaml:"opacity"`
	StackOrder int     `json:"stack_order" yaml:"stack_order"`
}

// Frame is one emitted tick of the cloud.
type Frame struct {
	Seq   uint64         `json:"seq" yaml:"seq"`
	State State          `json:"state" yaml:"state"`
	Icons []RenderedIcon `json:"icons" yaml:"icons"`

	// Labels is the label set the icons index into.
	Labels []Label `json:"-" yaml:"-"`
}
