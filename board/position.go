package board

// Position addresses a cell by row and column. Row may be negative while a
// piece sits above the visible board.
type Position struct {
	Row, Col int
}

var (
	Left  = Position{Row: 0, Col: -1}
	Right = Position{Row: 0, Col: 1}
	Down  = Position{Row: 1, Col: 0}
	Still = Position{}
)

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func translate(tiles [4]Position, d Position) [4]Position {
	for i := range tiles {
		tiles[i] = tiles[i].Add(d)
	}
	return tiles
}

func contains(tiles [4]Position, p Position) bool {
	for _, t := range tiles {
		if t == p {
			return true
		}
	}
	return false
}
