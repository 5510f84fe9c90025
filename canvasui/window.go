package canvasui

import (
	"fmt"
	"log/slog"

	"github.com/tfriedel6/canvas/sdlcanvas"

	"github.com/lixenwraith/fireworks/control"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Options configures the window
type Options struct {
	Width, Height int
	Title         string
	Field         firework.Config
	Audio         firework.Audio
	Muter         control.Muter
	Logger        *slog.Logger
}

// Left mouse button as reported by sdlcanvas
const mouseLeft = 1

// SDL scancode for Escape
const scancodeEscape = 41

// Run opens the window and blocks until it is closed; the field ticks once per displayed frame
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1024, 768
	}
	if opts.Title == "" {
		opts.Title = "fireworks"
	}

	wnd, cv, err := sdlcanvas.CreateWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer wnd.Destroy()

	surface := NewSurface(cv)

	fieldOpts := []firework.Option{firework.WithConfig(opts.Field)}
	if opts.Logger != nil {
		fieldOpts = append(fieldOpts, firework.WithLogger(opts.Logger))
	}
	if opts.Audio != nil {
		fieldOpts = append(fieldOpts, firework.WithAudio(opts.Audio))
	}
	field := firework.NewField(surface, fieldOpts...)

	gate := control.NewGate(nil)
	ctrl := control.New(field, gate, opts.Muter, wnd.Close)

	// Input callbacks run on the MainLoop goroutine between frames
	wnd.MouseDown = func(button, x, y int) {
		if button == mouseLeft {
			ctrl.Click(vmath.V2(float64(x), float64(y)))
		}
	}
	wnd.KeyDown = func(scancode int, rn rune, name string) {
		if scancode == scancodeEscape {
			ctrl.Quit()
			return
		}
		if rn != 0 {
			ctrl.Rune(rn)
		}
	}

	cv.SetFillStyle("#000000")
	cv.FillRect(0, 0, float64(cv.Width()), float64(cv.Height()))

	wnd.MainLoop(func() {
		if gate.Allow() {
			field.Tick()
		}
		render.BeginFrame(surface, parameter.FadeAmount)
		field.Render(surface)
	})
	return nil
}
