// Package gui runs the fireworks field in an ebiten window
package gui

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

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
	FPS           int
	Field         firework.Config
	Audio         firework.Audio
	Muter         control.Muter
	Logger        *slog.Logger
}

// Game implements ebiten.Game; ebiten's Update callback is the frame driver
type Game struct {
	field   *firework.Field
	ctrl    *control.Controller
	gate    *control.Gate
	canvas  *ebiten.Image
	surface *Surface
	w, h    int
	quit    bool
}

// NewGame creates a game sized for the initial window
func NewGame(opts Options) *Game {
	g := &Game{w: opts.Width, h: opts.Height, gate: control.NewGate(nil)}

	fieldOpts := []firework.Option{firework.WithConfig(opts.Field)}
	if opts.Logger != nil {
		fieldOpts = append(fieldOpts, firework.WithLogger(opts.Logger))
	}
	if opts.Audio != nil {
		fieldOpts = append(fieldOpts, firework.WithAudio(opts.Audio))
	}
	g.field = firework.NewField(g, fieldOpts...)
	g.ctrl = control.New(g.field, g.gate, opts.Muter, func() { g.quit = true })
	return g
}

// Size reports the logical screen size, satisfying firework.Viewport
func (g *Game) Size() (width, height float64) {
	return float64(g.w), float64(g.h)
}

func (g *Game) Field() *firework.Field { return g.field }

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctrl.Click(vmath.V2(float64(x), float64(y)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Quit()
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.ctrl.Rune(r)
	}
	if g.quit {
		return ebiten.Termination
	}

	if g.gate.Allow() {
		g.field.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil || g.canvas.Bounds().Dx() != g.w || g.canvas.Bounds().Dy() != g.h {
		g.canvas = ebiten.NewImage(g.w, g.h)
		if g.surface == nil {
			g.surface = NewSurface(g.canvas)
		} else {
			g.surface.Target(g.canvas)
		}
	}

	render.BeginFrame(g.surface, parameter.FadeAmount)
	g.field.Render(g.surface)
	screen.DrawImage(g.canvas, nil)

	if g.ctrl.ShowHUD() {
		ebitenutil.DebugPrint(screen, g.ctrl.Status().String())
	}
}

// Layout follows the window size so the viewport tracks resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.w, g.h
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1024, 768
	}
	if opts.Title == "" {
		opts.Title = "fireworks"
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	err := ebiten.RunGame(NewGame(opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
