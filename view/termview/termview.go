// Package termview plays the game in a terminal with tcell.
package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/game"
	"github.com/plus3/tetramino/view"
	"github.com/rs/zerolog"
)

// releaseAfter is how long Down must stay quiet before soft drop ends.
// Terminals report key repeats but never releases.
const releaseAfter = 200 * time.Millisecond

// Options configures a Frontend.
type Options struct {
	TPS   int
	Pilot *game.Autopilot
	Log   zerolog.Logger
}

// Frontend draws a session on a tcell screen and feeds it key commands.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	pilot   *game.Autopilot
	layout  view.Layout
	tick    time.Duration
	log     zerolog.Logger
	now     func() time.Time

	softDrop bool
	lastDown time.Time
}

// New creates a frontend. The screen must already be initialized.
func New(screen tcell.Screen, s *game.Session, opts Options) *Frontend {
	if opts.TPS < 1 {
		opts.TPS = 60
	}
	return &Frontend{
		screen:  screen,
		session: s,
		pilot:   opts.Pilot,
		layout:  view.TerminalLayout,
		tick:    time.Second / time.Duration(opts.TPS),
		log:     opts.Log,
		now:     time.Now,
	}
}

// Run draws and updates the session until the player quits or ctx ends.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	f.log.Info().Dur("tick", f.tick).Msg("terminal frontend running")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Step()
			f.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		return f.handleKey(ev)
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		f.session.Enqueue(game.CommandLeft)
	case tcell.KeyRight:
		f.session.Enqueue(game.CommandRight)
	case tcell.KeyUp:
		f.session.Enqueue(game.CommandRotate)
	case tcell.KeyDown:
		f.pressDown()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			f.session.Enqueue(game.CommandHardDrop)
		case 'h':
			f.session.Enqueue(game.CommandLeft)
		case 'l':
			f.session.Enqueue(game.CommandRight)
		case 'k':
			f.session.Enqueue(game.CommandRotate)
		case 'j':
			f.pressDown()
		case 'r':
			if !f.session.Active() {
				f.log.Info().Msg("restarting")
				f.session.Restart()
			}
		}
	}
	return true
}

func (f *Frontend) pressDown() {
	f.lastDown = f.now()
	if !f.softDrop {
		f.softDrop = true
		f.session.Enqueue(game.CommandSoftDropFast)
	}
}

// Step runs one game frame.
func (f *Frontend) Step() {
	if f.softDrop && f.now().Sub(f.lastDown) >= releaseAfter {
		f.softDrop = false
		f.session.Enqueue(game.CommandSoftDropSlow)
	}
	if f.pilot != nil {
		f.pilot.Drive(f.session)
	}
	f.session.Update(f.tick.Seconds())
}

// Draw renders the current snapshot and shows it.
func (f *Frontend) Draw() {
	snap := f.session.Snapshot()
	r := &renderer{screen: f.screen, layout: f.layout}
	view.Render(r, &snap, f.layout)
	r.status(&snap)
	f.screen.Show()
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// renderer maps one layout unit to two terminal columns so tiles look square.
type renderer struct {
	screen tcell.Screen
	layout view.Layout
}

func (r *renderer) DrawBackground() {
	r.screen.Clear()
}

func (r *renderer) DrawFrame() {
	left := 2*r.layout.FieldX - 1
	right := 2 * (r.layout.FieldX + board.Cols)
	top := r.layout.FieldY - 1
	bottom := r.layout.FieldY + board.Rows

	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, frameStyle)
		r.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, frameStyle)
	r.screen.SetContent(right, top, '┐', nil, frameStyle)
	r.screen.SetContent(left, bottom, '└', nil, frameStyle)
	r.screen.SetContent(right, bottom, '┘', nil, frameStyle)

	r.text(2*r.layout.PreviewX, r.layout.PreviewStep-1, "NEXT", textStyle)
}

func (r *renderer) DrawTile(cell board.Cell, x, y int) {
	c := view.CellColor(board.Cell{Color: cell.Color})
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	ch := '█'
	if cell.Transparency > 0 {
		ch = '░'
	}
	r.screen.SetContent(2*x, y, ch, nil, style)
	r.screen.SetContent(2*x+1, y, ch, nil, style)
}

func (r *renderer) status(snap *game.Snapshot) {
	x := 2 * r.layout.PreviewX
	y := r.layout.PreviewStep*(board.QueueLen+1) - 1
	r.text(x, y, fmt.Sprintf("LINES %d", snap.Stats.Lines), textStyle)
	r.text(x, y+1, fmt.Sprintf("PIECES %d", snap.Stats.Pieces), textStyle)

	if !snap.Active {
		mid := r.layout.FieldY + board.Rows/2
		r.text(2*r.layout.FieldX+5, mid, "GAME OVER", overStyle)
		r.text(2*r.layout.FieldX+2, mid+1, "r to restart", textStyle)
	}
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
