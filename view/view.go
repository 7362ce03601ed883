// Package view turns a game snapshot into tile draw calls. Frontends supply
// a Renderer; Render decides where each tile goes.
package view

import (
	"image/color"

	"github.com/plus3/tetramino/board"
	"github.com/plus3/tetramino/game"
)

// Renderer draws into a frontend's surface. Coordinates are in layout units.
type Renderer interface {
	DrawBackground()
	DrawFrame()
	DrawTile(cell board.Cell, x, y int)
}

// Layout places the field and the previews.
type Layout struct {
	FieldX, FieldY int
	Tile           int

	// Preview i (1-based) starts at (PreviewX, PreviewStep*i).
	PreviewX    int
	PreviewStep int

	Width, Height int
}

// DefaultLayout is the 320x480 window layout with 18px tiles.
var DefaultLayout = Layout{
	FieldX:      28,
	FieldY:      31,
	Tile:        18,
	PreviewX:    250,
	PreviewStep: 90,
	Width:       320,
	Height:      480,
}

// TerminalLayout uses one unit per tile. Terminal renderers widen x themselves.
var TerminalLayout = Layout{
	FieldX:      1,
	FieldY:      1,
	Tile:        1,
	PreviewX:    board.Cols + 3,
	PreviewStep: 5,
	Width:       board.Cols + 6,
	Height:      board.Rows + 2,
}

// FieldTile returns the top-left corner of the field cell at row, col.
func (l Layout) FieldTile(row, col int) (x, y int) {
	return l.FieldX + col*l.Tile, l.FieldY + row*l.Tile
}

// PreviewTile returns the corner of template index idx in preview slot i.
func (l Layout) PreviewTile(i, idx int) (x, y int) {
	return l.PreviewX + l.Tile*(idx%2), l.PreviewStep*i + l.Tile*(idx/2)
}

// Render draws the background, every non-empty cell of the composed grid,
// the frame and the queued previews, in that order.
func Render(r Renderer, snap *game.Snapshot, l Layout) {
	r.DrawBackground()

	for row := range snap.Grid {
		for col, cell := range snap.Grid[row] {
			if cell.Empty() {
				continue
			}
			x, y := l.FieldTile(row, col)
			r.DrawTile(cell, x, y)
		}
	}

	r.DrawFrame()

	for i, d := range snap.Next {
		cell := board.Cell{Color: d.Color}
		for _, idx := range d.Shape.Shape() {
			x, y := l.PreviewTile(i+1, idx)
			r.DrawTile(cell, x, y)
		}
	}
}

// Palette maps cell colors to RGBA.
var Palette = [board.ColorCount + 1]color.RGBA{
	board.None:   {0x10, 0x10, 0x18, 0xff},
	board.Purple: {0x9b, 0x4d, 0xca, 0xff},
	board.Red:    {0xe0, 0x3c, 0x31, 0xff},
	board.Green:  {0x4c, 0xbb, 0x47, 0xff},
	board.Yellow: {0xf2, 0xc9, 0x4c, 0xff},
	board.Sky:    {0x4f, 0xc3, 0xf7, 0xff},
	board.Orange: {0xf5, 0x8a, 0x2a, 0xff},
	board.Blue:   {0x3b, 0x5b, 0xdb, 0xff},
}

// CellColor returns the fill color of cell with transparency applied to alpha.
func CellColor(cell board.Cell) color.RGBA {
	c := Palette[board.None]
	if int(cell.Color) < len(Palette) {
		c = Palette[cell.Color]
	}
	if cell.Transparency > 0 {
		alpha := 1 - cell.Transparency
		c = color.RGBA{
			R: uint8(float32(c.R) * alpha),
			G: uint8(float32(c.G) * alpha),
			B: uint8(float32(c.B) * alpha),
			A: uint8(float32(c.A) * alpha),
		}
	}
	return c
}
