package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"iconcloud/cloud"
)

// impulse is the velocity added by one arrow key press.
const impulse = 0.01

// App runs the interactive cloud on a terminal screen.
type App struct {
	screen  tcell.Screen
	cloud   *cloud.Cloud
	mailbox *cloud.Mailbox
	view    *View
	loop    *cloud.Loop
	logger  *zap.Logger
}

// NewApp wires a view and a frame loop to an initialized screen.
func NewApp(s tcell.Screen, c *cloud.Cloud, fps int, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	mb := &cloud.Mailbox{}
	view := NewView(s, c, mb)
	return &App{
		screen:  s,
		cloud:   c,
		mailbox: mb,
		view:    view,
		loop:    cloud.NewLoop(c, mb, view.Draw, cloud.WithFPS(fps), cloud.WithLogger(logger)),
		logger:  logger,
	}
}

// Run animates until a quit key or ctx ends. The frame loop is stopped
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	defer a.screen.DisableMouse()

	if err := a.loop.Start(ctx); err != nil {
		return fmt.Errorf("start frame loop: %w", err)
	}
	defer a.loop.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return a.pollEvents(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		// wake PollEvent so the poller sees the cancellation
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	return g.Wait()
}

func (a *App) pollEvents(ctx context.Context) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(ctx, ev); quit {
				a.logger.Info("quit requested")
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			a.view.HandleMouse(x, y)
		case *tcell.EventFocus:
			if !ev.Focused {
				a.view.Release()
			}
		case *tcell.EventResize:
			a.screen.Sync()
			if !a.loop.Running() {
				a.view.Redraw()
			}
		}
	}
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.cloud.Impulse(-impulse, 0)
	case tcell.KeyDown:
		a.cloud.Impulse(impulse, 0)
	case tcell.KeyLeft:
		a.cloud.Impulse(0, -impulse)
	case tcell.KeyRight:
		a.cloud.Impulse(0, impulse)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			a.cloud.Reset()
		case ' ':
			a.togglePause(ctx)
		}
	}
	return false
}

func (a *App) togglePause(ctx context.Context) {
	if a.loop.Running() {
		a.loop.Stop()
		a.view.SetPaused(true)
		a.view.Redraw()
		a.logger.Debug("paused")
		return
	}
	a.view.SetPaused(false)
	if err := a.loop.Start(ctx); err != nil {
		a.logger.Warn("resume failed", zap.Error(err))
	}
}

// SetLabels swaps the label set shown by the running app.
func (a *App) SetLabels(labels []cloud.Label) error {
	if err := a.cloud.SetLabels(labels); err != nil {
		return err
	}
	a.refreshPaused()
	return nil
}

// SetGeometry changes the field radius and base icon size.
func (a *App) SetGeometry(radius, iconSize float64) error {
	if err := a.cloud.SetProjector(radius, iconSize); err != nil {
		return err
	}
	a.refreshPaused()
	return nil
}

// refreshPaused repaints when no frame loop is running to pick up a change.
func (a *App) refreshPaused() {
	if !a.loop.Running() {
		a.view.Redraw()
	}
}

func (a *App) Mailbox() *cloud.Mailbox { return a.mailbox }
