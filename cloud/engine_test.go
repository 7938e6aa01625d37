package cloud

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate_PreservesMagnitude(t *testing.T) {
	points, err := FibonacciSphere(64)
	require.NoError(t, err)

	angles := []Rotation{
		{AngleX: 0.3, AngleY: 1.2},
		{AngleX: -4.7, AngleY: 0.01},
		{AngleX: 123.456, AngleY: -98.7},
	}
	for _, r := range angles {
		for _, p := range points {
			assert.InDelta(t, p.Norm(), p.Rotate(r).Norm(), 1e-12)
		}
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	p := Point3D{X: 0.48, Y: -0.6, Z: 0.64}
	for _, theta := range []float64{0.1, 1, math.Pi / 3, 10} {
		back := p.RotateY(theta).RotateY(-theta)
		assert.InDelta(t, p.X, back.X, 1e-12)
		assert.InDelta(t, p.Y, back.Y, 1e-12)
		assert.InDelta(t, p.Z, back.Z, 1e-12)

		back = p.RotateX(theta).RotateX(-theta)
		assert.InDelta(t, p.X, back.X, 1e-12)
		assert.InDelta(t, p.Y, back.Y, 1e-12)
		assert.InDelta(t, p.Z, back.Z, 1e-12)
	}
}

func TestRotate_MatchesMatrices(t *testing.T) {
	p := Point3D{X: 0.2, Y: 0.9, Z: -0.3}
	r := Rotation{AngleX: 0.7, AngleY: -1.9}

	// Y first, then X: M = Rx * Ry
	m := mgl64.Rotate3DX(r.AngleX).Mul3(mgl64.Rotate3DY(r.AngleY))
	want := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})

	got := p.Rotate(r)
	assert.InDelta(t, want.X(), got.X, 1e-12)
	assert.InDelta(t, want.Y(), got.Y, 1e-12)
	assert.InDelta(t, want.Z(), got.Z, 1e-12)
}

func TestRotate_OrderMatters(t *testing.T) {
	p := Point3D{X: 1}
	r := Rotation{AngleX: math.Pi / 2, AngleY: math.Pi / 2}
	yThenX := p.Rotate(r)
	xThenY := p.RotateX(r.AngleX).RotateY(r.AngleY)
	assert.NotEqual(t, yThenX, xThenY)
}

func TestAdvance_IdleConvergence(t *testing.T) {
	params := DefaultParams()
	s := State{}
	prev := s.Velocity

	for i := 0; i < 3000; i++ {
		s = params.Advance(s, PointerState{}, 1)
		// approaches from below, never past the target
		assert.LessOrEqual(t, s.Velocity.VX, params.IdleTarget.VX+1e-15)
		assert.LessOrEqual(t, s.Velocity.VY, params.IdleTarget.VY+1e-15)
		assert.GreaterOrEqual(t, s.Velocity.VX, prev.VX)
		assert.GreaterOrEqual(t, s.Velocity.VY, prev.VY)
		prev = s.Velocity
	}
	assert.InDelta(t, 0.002, s.Velocity.VX, 1e-9)
	assert.InDelta(t, 0.005, s.Velocity.VY, 1e-9)
}

func TestAdvance_SingleFrameFormula(t *testing.T) {
	params := DefaultParams()
	s := State{Velocity: Velocity{VX: 0.01, VY: -0.01}, Rotation: Rotation{AngleX: 1, AngleY: 2}}

	next := params.Advance(s, PointerState{}, 1)
	vx := 0.01 + (0.002-0.01)*0.01
	vy := -0.01 + (0.005+0.01)*0.01
	assert.Equal(t, vx, next.Velocity.VX)
	assert.Equal(t, vy, next.Velocity.VY)
	assert.Equal(t, 1+vx, next.Rotation.AngleX)
	assert.Equal(t, 2+vy, next.Rotation.AngleY)
}

func TestAdvance_Steering(t *testing.T) {
	params := DefaultParams()
	ptr := PointerState{DX: 100, DY: -50, Active: true}
	s := params.InitialState()

	next := params.Advance(s, ptr, 1)
	targetVX := -50 * params.SteerGain
	targetVY := 100 * params.SteerGain
	assert.InDelta(t, s.Velocity.VX+(targetVX-s.Velocity.VX)*0.05, next.Velocity.VX, 1e-15)
	assert.InDelta(t, s.Velocity.VY+(targetVY-s.Velocity.VY)*0.05, next.Velocity.VY, 1e-15)

	for i := 0; i < 2000; i++ {
		s = params.Advance(s, ptr, 1)
	}
	assert.InDelta(t, targetVX, s.Velocity.VX, 1e-9)
	assert.InDelta(t, targetVY, s.Velocity.VY, 1e-9)
}

func TestAdvance_IdleAlwaysDrifts(t *testing.T) {
	params := DefaultParams()
	s := params.InitialState()
	next := params.Advance(s, PointerState{}, 1)
	assert.NotEqual(t, s.Rotation, next.Rotation)
}

func TestAdvance_FractionalSteps(t *testing.T) {
	params := DefaultParams()
	start := State{}

	two := params.Advance(params.Advance(start, PointerState{}, 1), PointerState{}, 1)
	once := params.Advance(start, PointerState{}, 2)

	// velocity relaxation composes exactly across step sizes
	assert.InDelta(t, two.Velocity.VX, once.Velocity.VX, 1e-15)
	assert.InDelta(t, two.Velocity.VY, once.Velocity.VY, 1e-15)
}

func TestAdvance_InvalidStep(t *testing.T) {
	params := DefaultParams()
	s := params.InitialState()
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Equal(t, s, params.Advance(s, PointerState{}, dt))
	}
}

func TestAdvance_NonFinitePointerIsIdle(t *testing.T) {
	params := DefaultParams()
	s := params.InitialState()
	bad := PointerState{DX: math.NaN(), DY: math.Inf(-1), Active: true}

	next := params.Advance(s, bad, 1)
	idle := params.Advance(s, PointerState{}, 1)
	assert.Equal(t, idle, next)
	assert.False(t, math.IsNaN(next.Rotation.AngleX))
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.IdleSmoothing = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = DefaultParams()
	p.SteerSmoothing = 1.5
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = DefaultParams()
	p.SteerGain = math.NaN()
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestEngine_StepKeepsAlignment(t *testing.T) {
	e, err := NewEngine(24, DefaultParams())
	require.NoError(t, err)
	base := e.Base()

	var out []Point3D
	for i := 0; i < 10; i++ {
		out = e.Step(PointerState{}, 1)
	}
	require.Len(t, out, len(base))
	r := e.State().Rotation
	for i := range base {
		assert.Equal(t, base[i].Rotate(r), out[i])
	}
}

func TestEngine_ResizeKeepsRotation(t *testing.T) {
	e, err := NewEngine(5, DefaultParams())
	require.NoError(t, err)
	e.Step(PointerState{}, 1)
	before := e.State()

	require.NoError(t, e.Resize(8))
	assert.Equal(t, 8, e.Len())
	assert.Equal(t, before, e.State())
	assert.Len(t, e.Step(PointerState{}, 1), 8)

	assert.ErrorIs(t, e.Resize(0), ErrInvalidCount)
	assert.Equal(t, 8, e.Len())
}

func TestEngine_ImpulseAndReset(t *testing.T) {
	e, err := NewEngine(3, DefaultParams())
	require.NoError(t, err)

	e.Impulse(0.01, -0.02)
	assert.InDelta(t, 0.012, e.State().Velocity.VX, 1e-15)
	assert.InDelta(t, -0.015, e.State().Velocity.VY, 1e-15)

	e.Impulse(math.NaN(), 1)
	assert.InDelta(t, 0.012, e.State().Velocity.VX, 1e-15)

	e.Step(PointerState{}, 1)
	e.Reset()
	assert.Equal(t, DefaultParams().InitialState(), e.State())
}
