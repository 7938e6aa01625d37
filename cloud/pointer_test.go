package cloud

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox_Latest(t *testing.T) {
	var mb Mailbox
	assert.Equal(t, PointerState{}, mb.Load())

	require.NoError(t, mb.Put(PointerState{DX: 3, DY: 4, Active: true}))
	require.NoError(t, mb.Put(PointerState{DX: -10, DY: 2, Active: true}))
	assert.Equal(t, PointerState{DX: -10, DY: 2, Active: true}, mb.Load())

	mb.Release()
	assert.False(t, mb.Load().Active)
}

func TestMailbox_RejectsNonFinite(t *testing.T) {
	var mb Mailbox
	good := PointerState{DX: 1, DY: 1, Active: true}
	require.NoError(t, mb.Put(good))

	for _, bad := range []PointerState{
		{DX: math.NaN(), Active: true},
		{DY: math.Inf(1), Active: true},
		{DX: math.Inf(-1)},
	} {
		assert.ErrorIs(t, mb.Put(bad), ErrNonFinite)
	}
	assert.Equal(t, good, mb.Load())
}

func TestMailbox_WholeValueWrites(t *testing.T) {
	var mb Mailbox
	var wg sync.WaitGroup
	for w := 1; w <= 4; w++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = mb.Put(PointerState{DX: v, DY: v, Active: true})
			}
		}(float64(w))
	}
	for i := 0; i < 1000; i++ {
		p := mb.Load()
		// a torn write would mix offsets from different writers
		assert.Equal(t, p.DX, p.DY)
	}
	wg.Wait()
}
