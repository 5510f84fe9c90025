package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/fireworks/control"
	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
)

// ErrPanic wraps a panic recovered from one of Run's goroutines
var ErrPanic = errors.New("terminal app panicked")

// Options configures an App
type Options struct {
	FPS        int
	WorldScale float64
	ColorMode  ColorMode
	Field      firework.Config
	Audio      firework.Audio // nil runs silent
	Muter      control.Muter  // nil disables the mute key
	Logger     *slog.Logger
	HideHUD    bool
}

// App runs the fireworks field in a tcell screen
// Field, raster and controller are touched only from the loop goroutine
type App struct {
	screen tcell.Screen
	raster *Raster
	field  *firework.Field
	loop   *engine.Loop
	ctrl   *control.Controller
	log    *slog.Logger

	cancel   context.CancelFunc
	finiOnce sync.Once
	buttons  tcell.ButtonMask // last mouse button state, for click edge detection
}

// NewApp wires a field to an initialized screen
func NewApp(screen tcell.Screen, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	cols, rows := screen.Size()
	a := &App{
		screen: screen,
		raster: NewRaster(cols, rows, opts.WorldScale, opts.ColorMode),
		log:    log,
	}

	fieldOpts := []firework.Option{firework.WithConfig(opts.Field), firework.WithLogger(log)}
	if opts.Audio != nil {
		fieldOpts = append(fieldOpts, firework.WithAudio(opts.Audio))
	}
	a.field = firework.NewField(a.raster, fieldOpts...)
	a.loop = engine.NewLoop(engine.IntervalForFPS(opts.FPS), a.field.Tick, a.draw, engine.WithLogger(log))
	a.ctrl = control.New(a.field, a.loop, opts.Muter, a.Quit)
	if opts.HideHUD {
		a.ctrl.Rune('h')
	}
	return a
}

func (a *App) Field() *firework.Field          { return a.field }
func (a *App) Loop() *engine.Loop              { return a.loop }
func (a *App) Raster() *Raster                 { return a.raster }
func (a *App) Controller() *control.Controller { return a.ctrl }

// Run drives the loop and input until ctx is cancelled or the user quits
// The screen is finalized on return
func (a *App) Run(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.guard("loop", func() error {
		return a.loop.Run(gctx)
	}))

	// PollEvent blocks; Fini unblocks it with a nil event
	g.Go(a.guard("finalizer", func() error {
		<-gctx.Done()
		a.fini()
		return nil
	}))

	g.Go(a.guard("poller", func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			if !a.loop.Post(func() { a.HandleEvent(ev) }) {
				a.log.Debug("input dropped", "event", ev)
			}
		}
	}))

	return g.Wait()
}

// guard restores the terminal when fn panics and reports the panic as ErrPanic
// A recover only sees panics on its own goroutine, so every Run goroutine is wrapped
func (a *App) guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				a.fini()
				a.log.Error("goroutine panicked", "goroutine", name, "panic", r)
				err = fmt.Errorf("%w in %s: %v\n%s", ErrPanic, name, r, debug.Stack())
			}
		}()
		return fn()
	}
}

func (a *App) fini() {
	a.finiOnce.Do(a.screen.Fini)
}

// Quit stops Run
func (a *App) Quit() {
	if a.cancel != nil {
		a.cancel()
	}
}

// HandleEvent applies one input event; must run on the loop goroutine
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := a.screen.Size()
		a.raster.Resize(cols, rows)
		a.log.Debug("resize", "cols", cols, "rows", rows)

	case *tcell.EventMouse:
		btn := ev.Buttons()
		if btn&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			a.ctrl.Click(a.raster.CellToWorld(x, y))
		}
		a.buttons = btn

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			a.ctrl.Quit()
		case tcell.KeyRune:
			r := ev.Rune()
			if a.ctrl.Rune(r) && r == 'c' {
				a.raster.Clear()
			}
		}
	}
}

// draw fades the previous frame, renders the field and shows the screen
func (a *App) draw() {
	render.BeginFrame(a.raster, parameter.FadeAmount)
	a.field.Render(a.raster)
	a.raster.Flush(a.screen)

	if a.ctrl.ShowHUD() {
		drawText(a.screen, 0, 0, a.ctrl.Status().String(), hudStyle)
	}
	a.screen.Show()
}
