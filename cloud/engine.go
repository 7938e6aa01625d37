// =======================
// cloud/engine.go
// =======================

package cloud

import (
	"fmt"
	"math"
)

// Params tunes the rotation engine. Smoothing factors are per reference frame.
type Params struct {
	IdleTarget     Velocity `json:"idle_target" yaml:"idle_target"`
	IdleSmoothing  float64  `json:"idle_smoothing" yaml:"idle_smoothing"`
	SteerGain      float64  `json:"steer_gain" yaml:"steer_gain"`
	SteerSmoothing float64  `json:"steer_smoothing" yaml:"steer_smoothing"`
}

// DefaultParams returns the portfolio cloud tuning: slow idle drift, gentle steering.
func DefaultParams() Params {
	return Params{
		IdleTarget:     Velocity{VX: 0.002, VY: 0.005},
		IdleSmoothing:  0.01,
		SteerGain:      0.00002,
		SteerSmoothing: 0.05,
	}
}

// Validate rejects non-finite values and smoothing factors outside (0, 1].
func (p Params) Validate() error {
	for _, v := range []float64{p.IdleTarget.VX, p.IdleTarget.VY, p.SteerGain} {
		if !isFinite(v) {
			return fmt.Errorf("%w: %v", ErrInvalidParams, v)
		}
	}
	for _, a := range []float64{p.IdleSmoothing, p.SteerSmoothing} {
		if !isFinite(a) || a <= 0 || a > 1 {
			return fmt.Errorf("%w: smoothing %v not in (0, 1]", ErrInvalidParams, a)
		}
	}
	return nil
}

// InitialState is the state a fresh engine starts from: no rotation, already
// drifting at the idle velocity.
func (p Params) InitialState() State {
	return State{Velocity: p.IdleTarget}
}

// Advance computes the next state from the previous one. dt is measured in
// reference frames; dt == 1 applies the per-frame smoothing formula exactly.
func (p Params) Advance(s State, ptr PointerState, dt float64) State {
	if !isFinite(dt) || dt <= 0 {
		return s
	}

	target, alpha := p.IdleTarget, p.IdleSmoothing
	if ptr.Active && ptr.finite() {
		target = Velocity{VX: ptr.DY * p.SteerGain, VY: ptr.DX * p.SteerGain}
		alpha = p.SteerSmoothing
	}

	k := alpha
	if dt != 1 {
		k = 1 - math.Pow(1-alpha, dt)
	}
	s.Velocity.VX += (target.VX - s.Velocity.VX) * k
	s.Velocity.VY += (target.VY - s.Velocity.VY) * k

	s.Rotation.AngleX += s.Velocity.VX * dt
	s.Rotation.AngleY += s.Velocity.VY * dt
	return s
}

// Engine owns the base point field and threads State through Advance.
// It is not safe for concurrent use; Cloud serializes access.
type Engine struct {
	params  Params
	base    []Point3D
	state   State
	rotated []Point3D
}

// NewEngine builds the base field for n points.
func NewEngine(n int, params Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	base, err := FibonacciSphere(n)
	if err != nil {
		return nil, err
	}
	return &Engine{
		params:  params,
		base:    base,
		state:   params.InitialState(),
		rotated: make([]Point3D, n),
	}, nil
}

// Step advances one tick and returns the rotated points, index-aligned with
// the base field. The returned slice is reused by the next Step.
func (e *Engine) Step(ptr PointerState, dt float64) []Point3D {
	e.state = e.params.Advance(e.state, ptr, dt)
	return e.Current()
}

// Current rotates the base field by the current state without advancing it.
func (e *Engine) Current() []Point3D {
	for i, p := range e.base {
		e.rotated[i] = p.Rotate(e.state.Rotation)
	}
	return e.rotated
}

// Resize recomputes the base field when the count changes. The rotation
// state is kept.
func (e *Engine) Resize(n int) error {
	if n == len(e.base) {
		return nil
	}
	base, err := FibonacciSphere(n)
	if err != nil {
		return err
	}
	e.base = base
	e.rotated = make([]Point3D, n)
	return nil
}

// Impulse adds to the current velocity.
func (e *Engine) Impulse(dvx, dvy float64) {
	if !isFinite(dvx) || !isFinite(dvy) {
		return
	}
	e.state.Velocity.VX += dvx
	e.state.Velocity.VY += dvy
}

func (e *Engine) Reset()         { e.state = e.params.InitialState() }
func (e *Engine) State() State    { return e.state }
func (e *Engine) Len() int        { return len(e.base) }
func (e *Engine) Base() []Point3D { return append([]Point3D(nil), e.base...) }
