// Package board holds the playing field, the piece catalog and the active
// piece rules of the game. It has no knowledge of timing sources, sound or
// rendering beyond the small interfaces it declares.
package board

import "strings"

const (
	Rows = 20
	Cols = 10

	// BufferRows are the top rows excluded from line clearing.
	BufferRows = 3
)

// Color of a cell. None marks an empty cell.
type Color uint8

const (
	None Color = iota
	Purple
	Red
	Green
	Yellow
	Sky
	Orange
	Blue

	colorEnd
)

// ColorCount is the number of non-None colors.
const ColorCount = int(colorEnd) - 1

var colorNames = [...]string{"none", "purple", "red", "green", "yellow", "sky", "orange", "blue"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Cell is one square of the grid. Transparency 0 is opaque.
type Cell struct {
	Color        Color
	Transparency float32
}

// Empty reports whether the cell holds no color.
func (c Cell) Empty() bool {
	return c.Color == None
}

// Grid is the fixed-size playing field, indexed [row][col] from the top.
type Grid [Rows][Cols]Cell

// InBounds reports whether row and col address a cell of the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Get returns the cell at row, col. Callers bounds-check.
func (g *Grid) Get(row, col int) Cell {
	return g[row][col]
}

// Set overwrites the cell at row, col. Callers bounds-check.
func (g *Grid) Set(row, col int, cell Cell) {
	g[row][col] = cell
}

// IsEmpty reports whether the cell at row, col holds no color.
func (g *Grid) IsEmpty(row, col int) bool {
	return g[row][col].Empty()
}

// RowFull reports whether every cell in row is colored.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < Cols; col++ {
		if g[row][col].Empty() {
			return false
		}
	}
	return true
}

// ClearLines scans rows below the buffer from top to bottom. Each full row is
// removed on detection: the rows above it move down by one and the top row
// is emptied, then the scan continues with the next row.
// Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	for row := BufferRows; row < Rows; row++ {
		if !g.RowFull(row) {
			continue
		}
		copy(g[1:row+1], g[:row])
		g[0] = [Cols]Cell{}
		cleared++
	}
	return cleared
}

// Filled returns the number of colored cells.
func (g *Grid) Filled() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if !g[row][col].Empty() {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line: '.' for empty cells, '#' for
// opaque cells and '+' for translucent ones.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for row := range g {
		for _, cell := range g[row] {
			switch {
			case cell.Empty():
				sb.WriteByte('.')
			case cell.Transparency > 0:
				sb.WriteByte('+')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
