// Package ebitenview plays the game in a desktop window with ebiten.
package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/tetramino/game"
	"github.com/plus3/tetramino/view"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

// Overlay is drawn over the game and may claim the keyboard.
type Overlay interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	WantsKeyboard() bool
}

// Options configures a Game.
type Options struct {
	Title   string
	Scale   int
	TPS     int
	Pilot   *game.Autopilot
	Overlay Overlay
	Log     zerolog.Logger
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *game.Session
	opts    Options
	layout  view.Layout
	keys    keySource
	canvas  *ebiten.Image
	face    text.Face
}

// New wraps s. Zero options fall back to a 2x window at 60 TPS.
func New(s *game.Session, opts Options) *Game {
	if opts.Scale < 1 {
		opts.Scale = 2
	}
	if opts.TPS < 1 {
		opts.TPS = 60
	}
	if opts.Title == "" {
		opts.Title = "Tetramino"
	}

	layout := view.DefaultLayout
	return &Game{
		session: s,
		opts:    opts,
		layout:  layout,
		keys:    inpututilKeys{},
		canvas:  ebiten.NewImage(layout.Width, layout.Height),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run opens the window and blocks until it closes or the player quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.layout.Width*g.opts.Scale, g.layout.Height*g.opts.Scale)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TPS)

	g.opts.Log.Info().
		Int("scale", g.opts.Scale).
		Int("tps", g.opts.TPS).
		Bool("overlay", g.opts.Overlay != nil).
		Msg("window frontend running")
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	dt := 1.0 / float64(g.opts.TPS)

	if g.opts.Overlay == nil || !g.opts.Overlay.WantsKeyboard() {
		in := readKeys(g.keys)
		if in.quit {
			return ebiten.Termination
		}
		if in.restart && !g.session.Active() {
			g.opts.Log.Info().Msg("restarting")
			g.session.Restart()
		}
		for _, cmd := range in.commands {
			g.session.Enqueue(cmd)
		}
	}

	if g.opts.Pilot != nil {
		g.opts.Pilot.Drive(g.session)
	}
	g.session.Update(dt)

	if g.opts.Overlay != nil {
		g.opts.Overlay.Update(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	r := &renderer{dst: g.canvas, layout: g.layout, face: g.face}
	view.Render(r, &snap, g.layout)
	r.status(&snap)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(float64(sw)/float64(g.layout.Width), float64(sh)/float64(g.layout.Height))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-float64(g.layout.Width)*scale)/2,
		(float64(sh)-float64(g.layout.Height)*scale)/2,
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.canvas, op)

	if g.opts.Overlay != nil {
		g.opts.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.opts.Overlay != nil {
		g.opts.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
