// =======================
// cloud/cloud.go
// =======================

package cloud

import (
	"fmt"
	"slices"
	"sync"
)

// Options configures a Cloud.
type Options struct {
	Radius   float64
	IconSize float64
	Params   Params
}

// DefaultOptions returns the portfolio cloud's radius, icon size and tuning.
func DefaultOptions() Options {
	return Options{
		Radius:   DefaultRadius,
		IconSize: DefaultIconSize,
		Params:   DefaultParams(),
	}
}

// Cloud ties labels, the rotation engine and the projector together. It is
// safe for concurrent use.
type Cloud struct {
	mu        sync.Mutex
	labels    []Label
	engine    *Engine
	projector Projector
	seq       uint64
}

// NewCloud validates its input and builds the base point field.
func NewCloud(labels []Label, opts Options) (*Cloud, error) {
	if err := ValidateLabels(labels); err != nil {
		return nil, err
	}
	projector, err := NewProjector(opts.Radius, opts.IconSize)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(len(labels), opts.Params)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Cloud{
		labels:    slices.Clone(labels),
		engine:    engine,
		projector: projector,
	}, nil
}

// Tick advances the rotation by dt reference frames and projects every label.
func (c *Cloud) Tick(ptr PointerState, dt float64) Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	points := c.engine.Step(ptr, dt)
	c.seq++
	return c.frame(points)
}

// Snapshot projects the current rotation with the current labels and
// geometry. It does not advance the rotation or the frame sequence.
func (c *Cloud) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame(c.engine.Current())
}

func (c *Cloud) frame(points []Point3D) Frame {
	return Frame{
		Seq:    c.seq,
		State:  c.engine.State(),
		Icons:  c.projector.ProjectAll(make([]RenderedIcon, 0, len(points)), points),
		Labels: slices.Clone(c.labels),
	}
}

// SetLabels swaps the label set. The point field is rebuilt only when the
// count changes; the rotation carries over.
func (c *Cloud) SetLabels(labels []Label) error {
	if err := ValidateLabels(labels); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.engine.Resize(len(labels)); err != nil {
		return err
	}
	c.labels = slices.Clone(labels)
	return nil
}

// SetProjector changes radius and icon size.
func (c *Cloud) SetProjector(radius, iconSize float64) error {
	p, err := NewProjector(radius, iconSize)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.projector = p
	c.mu.Unlock()
	return nil
}

// Labels returns a copy of the current label set.
func (c *Cloud) Labels() []Label {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.labels)
}

// Label returns the label at index i.
func (c *Cloud) Label(i int) (Label, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.labels) {
		return Label{}, false
	}
	return c.labels[i], true
}

func (c *Cloud) Projector() Projector {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projector
}

func (c *Cloud) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.State()
}

func (c *Cloud) Reset() {
	c.mu.Lock()
	c.engine.Reset()
	c.mu.Unlock()
}

func (c *Cloud) Impulse(dvx, dvy float64) {
	c.mu.Lock()
	c.engine.Impulse(dvx, dvy)
	c.mu.Unlock()
}
