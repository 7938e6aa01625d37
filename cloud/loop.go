// =======================
// cloud/loop.go
// =======================

package cloud

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FrameFunc receives every frame on the loop goroutine. It must not call
// Loop.Stop.
type FrameFunc func(Frame)

// Loop drives a Cloud from a ticker, reading the pointer mailbox once per
// tick.
type Loop struct {
	cloud    *Cloud
	mailbox  *Mailbox
	interval time.Duration
	onFrame  FrameFunc
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

func WithLogger(l *zap.Logger) LoopOption {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithFPS sets the tick rate. Non-positive values keep the default.
func WithFPS(fps int) LoopOption {
	return func(lp *Loop) {
		if fps > 0 {
			lp.interval = time.Second / time.Duration(fps)
		}
	}
}

// NewLoop creates a stopped loop.
func NewLoop(c *Cloud, mb *Mailbox, onFrame FrameFunc, opts ...LoopOption) *Loop {
	lp := &Loop{
		cloud:    c,
		mailbox:  mb,
		interval: time.Second / DefaultFPS,
		onFrame:  onFrame,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// Start begins ticking until Stop is called or ctx ends.
func (lp *Loop) Start(ctx context.Context) error {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.done != nil {
		select {
		case <-lp.done:
		default:
			return ErrLoopRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	lp.cancel, lp.done = cancel, done

	lp.logger.Debug("frame loop started", zap.Duration("interval", lp.interval))
	go lp.run(ctx, done)
	return nil
}

// Stop cancels the loop and waits for the goroutine to exit. No frame is
// delivered after Stop returns. Calling Stop on a stopped loop is a no-op.
func (lp *Loop) Stop() {
	lp.mu.Lock()
	cancel, done := lp.cancel, lp.done
	lp.cancel = nil
	lp.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	if cancel != nil {
		lp.logger.Debug("frame loop stopped")
	}
}

// Running reports whether the loop goroutine is alive.
func (lp *Loop) Running() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if lp.done == nil {
		return false
	}
	select {
	case <-lp.done:
		return false
	default:
		return true
	}
}

func (lp *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(lp.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			dt := frameStep(now.Sub(last))
			last = now

			frame := lp.cloud.Tick(lp.mailbox.Load(), dt)
			if ctx.Err() != nil {
				return
			}
			if lp.onFrame != nil {
				lp.onFrame(frame)
			}
		}
	}
}

// frameStep converts elapsed wall time to reference frames, capped at
// MaxFrameStep.
func frameStep(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 1
	}
	dt := float64(elapsed) / float64(ReferenceFrame)
	if dt > MaxFrameStep {
		return MaxFrameStep
	}
	return dt
}
