package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/game"
	"github.com/plus3/tetramino/view"
)

var (
	backgroundColor = color.RGBA{0x1a, 0x1a, 0x24, 0xff}
	frameColor      = color.RGBA{0x8a, 0x8a, 0x9a, 0xff}
	textColor       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	gameOverColor   = color.RGBA{0xe0, 0x3c, 0x31, 0xff}
)

type renderer struct {
	dst    *ebiten.Image
	layout view.Layout
	face   text.Face
}

func (r *renderer) DrawBackground() {
	r.dst.Fill(backgroundColor)

	l := r.layout
	vector.DrawFilledRect(r.dst,
		float32(l.FieldX), float32(l.FieldY),
		float32(board.Cols*l.Tile), float32(board.Rows*l.Tile),
		view.Palette[board.None], false)
}

func (r *renderer) DrawFrame() {
	l := r.layout
	vector.StrokeRect(r.dst,
		float32(l.FieldX-2), float32(l.FieldY-2),
		float32(board.Cols*l.Tile+4), float32(board.Rows*l.Tile+4),
		2, frameColor, false)

	r.text("NEXT", l.PreviewX, l.PreviewStep-24, textColor)
}

func (r *renderer) DrawTile(cell board.Cell, x, y int) {
	size := float32(r.layout.Tile)
	fx, fy := float32(x), float32(y)

	vector.DrawFilledRect(r.dst, fx, fy, size-1, size-1, view.CellColor(cell), false)
	if cell.Transparency == 0 {
		vector.StrokeRect(r.dst, fx+1, fy+1, size-3, size-3, 1, color.RGBA{0xff, 0xff, 0xff, 0x40}, false)
	}
}

func (r *renderer) status(snap *game.Snapshot) {
	l := r.layout
	y := l.PreviewStep*(board.QueueLen+1) + 10
	r.text(fmt.Sprintf("LINES %d", snap.Stats.Lines), l.PreviewX-10, y, textColor)
	r.text(fmt.Sprintf("PCS %d", snap.Stats.Pieces), l.PreviewX-10, y+16, textColor)

	if !snap.Active {
		cx := l.FieldX + board.Cols*l.Tile/2
		cy := l.FieldY + board.Rows*l.Tile/2
		vector.DrawFilledRect(r.dst, float32(l.FieldX), float32(cy-14), float32(board.Cols*l.Tile), 44, color.RGBA{0, 0, 0, 0xc0}, false)
		r.text("GAME OVER", cx-31, cy-8, gameOverColor)
		r.text("R to restart", cx-42, cy+10, textColor)
	}
}

func (r *renderer) text(s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.dst, s, r.face, op)
}
