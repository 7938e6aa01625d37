// =======================
// cloud/pointer.go
// =======================

package cloud

import (
	"fmt"
	"sync/atomic"
)

// PointerState is the pointer offset from the field center, in the same
// units as the configured radius, and whether an interaction is engaged.
type PointerState struct {
	DX     float64 `json:"dx" yaml:"dx"`
	DY     float64 `json:"dy" yaml:"dy"`
	Active bool    `json:"active" yaml:"active"`
}

func (p PointerState) finite() bool {
	return isFinite(p.DX) && isFinite(p.DY)
}

// Validate returns ErrNonFinite for NaN or infinite offsets.
func (p PointerState) Validate() error {
	if !p.finite() {
		return fmt.Errorf("pointer (%v, %v): %w", p.DX, p.DY, ErrNonFinite)
	}
	return nil
}

// Mailbox is a single-slot pointer mailbox. Writers replace the whole value;
// the frame loop reads the latest value once per tick.
type Mailbox struct {
	slot atomic.Pointer[PointerState]
}

// Put stores p. Invalid input is rejected and the previous value is kept.
func (m *Mailbox) Put(p PointerState) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.slot.Store(&p)
	return nil
}

// Release marks the pointer inactive.
func (m *Mailbox) Release() {
	m.slot.Store(&PointerState{})
}

// Load returns the latest pointer state; the zero value means idle.
func (m *Mailbox) Load() PointerState {
	if p := m.slot.Load(); p != nil {
		return *p
	}
	return PointerState{}
}
