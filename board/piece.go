package board

import "time"

const (
	FastDelay = 50 * time.Millisecond
	SlowDelay = 700 * time.Millisecond

	// ShadowTransparency is applied to the landing preview of a piece.
	ShadowTransparency = 0.5
)

// Piece is the falling piece under player control. It reads the grid to
// decide legality and only writes to it through AddToGrid/RemoveFromGrid.
type Piece struct {
	Tiles     [4]Position
	Shadow    [4]Position
	Color     Color
	FallDelay time.Duration
	Placed    bool

	grid  *Grid
	timer Timer
}

// NewPiece creates a piece over grid and spawns it from d.
func NewPiece(grid *Grid, clock Clock, d Descriptor, fallDelay time.Duration) Piece {
	p := Piece{
		grid:  grid,
		timer: NewTimer(clock),
	}
	p.Reset(d, fallDelay)
	return p
}

// Reset spawns the piece from d at the top of the board. When the spawn cells
// are blocked the piece is lifted one row so it can sit partly above the board.
func (p *Piece) Reset(d Descriptor, fallDelay time.Duration) {
	p.Color = d.Color
	p.FallDelay = fallDelay
	p.Placed = false
	p.Tiles = d.Shape.Shape().SpawnTiles()

	if !p.CanMoveTowards(Still) {
		p.Tiles = translate(p.Tiles, Position{Row: -1})
	}

	p.UpdateShadow()
}

// TileIsAllowed reports whether pos is inside the side and bottom walls and
// not occupied. Rows above the board are always allowed.
func (p *Piece) TileIsAllowed(pos Position) bool {
	if pos.Col < 0 || pos.Col >= Cols || pos.Row >= Rows {
		return false
	}
	return pos.Row < 0 || p.grid.IsEmpty(pos.Row, pos.Col)
}

// CanMoveTowards reports whether every tile stays legal after translating by d.
func (p *Piece) CanMoveTowards(d Position) bool {
	for _, t := range p.Tiles {
		if !p.TileIsAllowed(t.Add(d)) {
			return false
		}
	}
	return true
}

// Move translates the piece by d if the result is legal.
func (p *Piece) Move(d Position) bool {
	if !p.CanMoveTowards(d) {
		return false
	}
	p.Tiles = translate(p.Tiles, d)
	return true
}

// MoveLeft shifts the piece one column left and refreshes the shadow.
func (p *Piece) MoveLeft() bool {
	return p.shift(Left)
}

// MoveRight shifts the piece one column right and refreshes the shadow.
func (p *Piece) MoveRight() bool {
	return p.shift(Right)
}

func (p *Piece) shift(d Position) bool {
	if !p.Move(d) {
		return false
	}
	p.UpdateShadow()
	return true
}

// Fast switches gravity to the soft-drop interval.
func (p *Piece) Fast() {
	p.FallDelay = FastDelay
}

// Slow restores the normal gravity interval.
func (p *Piece) Slow() {
	p.FallDelay = SlowDelay
}

// MoveDown is the gravity tick. Once FallDelay has elapsed since the last
// drop the piece moves one row down, or is marked placed when it cannot.
// Returns whether the delay had elapsed.
func (p *Piece) MoveDown() bool {
	p.timer.Stop()
	if p.timer.Elapsed() < p.FallDelay {
		return false
	}

	p.timer.Start()
	if !p.Move(Down) {
		p.Placed = true
	}
	return true
}

// Rotate turns the piece 90 degrees around tile 1. Nothing changes unless
// every rotated tile is legal.
func (p *Piece) Rotate() bool {
	pivot := p.Tiles[1]

	rotated := p.Tiles
	for i, t := range rotated {
		rotated[i] = Position{
			Row: pivot.Row - (t.Col - pivot.Col),
			Col: pivot.Col + (t.Row - pivot.Row),
		}
		if !p.TileIsAllowed(rotated[i]) {
			return false
		}
	}

	p.Tiles = rotated
	p.UpdateShadow()
	return true
}

// Fall drops the piece onto its shadow and marks it placed.
func (p *Piece) Fall() {
	p.Tiles = p.Shadow
	p.Placed = true
	p.timer.Start()
}

// Bottom returns the tiles moved straight down as far as they can go.
func (p *Piece) Bottom() [4]Position {
	tiles := p.Tiles
	for p.canDrop(tiles) {
		tiles = translate(tiles, Down)
	}
	return tiles
}

func (p *Piece) canDrop(tiles [4]Position) bool {
	for _, t := range tiles {
		below := t.Row + 1
		if below >= Rows {
			return false
		}
		if below >= 0 && !p.grid.IsEmpty(below, t.Col) {
			return false
		}
	}
	return true
}

// UpdateShadow recomputes the landing position.
func (p *Piece) UpdateShadow() {
	p.Shadow = p.Bottom()
}

// AddToGrid paints the piece opaque and its shadow translucent into the grid.
// Returns false, leaving the grid untouched, if the piece does not fit where it is.
func (p *Piece) AddToGrid() bool {
	if !p.CanMoveTowards(Still) {
		return false
	}
	p.paint(p.grid, p.tileCell(), p.shadowCell())
	return true
}

// RemoveFromGrid resets every cell AddToGrid painted to the empty cell.
func (p *Piece) RemoveFromGrid() {
	p.paint(p.grid, Cell{}, Cell{})
}

// Overlay returns a copy of the grid with the piece and its shadow painted in.
// The live grid is not modified.
func (p *Piece) Overlay() Grid {
	composed := *p.grid
	if p.CanMoveTowards(Still) {
		p.paint(&composed, p.tileCell(), p.shadowCell())
	}
	return composed
}

// Grid returns the grid the piece moves on.
func (p *Piece) Grid() *Grid {
	return p.grid
}

func (p *Piece) tileCell() Cell {
	return Cell{Color: p.Color}
}

func (p *Piece) shadowCell() Cell {
	return Cell{Color: p.Color, Transparency: ShadowTransparency}
}

// paint writes tileCell over the piece and shadowCell over the shadow cells
// that do not coincide with it. Cells above the board are skipped.
func (p *Piece) paint(g *Grid, tileCell, shadowCell Cell) {
	for i := range p.Tiles {
		tile, shade := p.Tiles[i], p.Shadow[i]

		if !contains(p.Tiles, shade) && InBounds(shade.Row, shade.Col) {
			g.Set(shade.Row, shade.Col, shadowCell)
		}
		if InBounds(tile.Row, tile.Col) {
			g.Set(tile.Row, tile.Col, tileCell)
		}
	}
}
