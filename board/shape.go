package board

// ShapeKind identifies one of the seven piece templates.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota
	ShapeL
	ShapeJ
	ShapeT
	ShapeO
	ShapeS
	ShapeZ
)

// ShapeCount is the number of piece templates.
const ShapeCount = 7

// Shape lists four cells of a 4x2 template as indices: row = idx/2, col = idx%2.
type Shape [4]int

// Shapes is the template catalog, indexed by ShapeKind.
var Shapes = [ShapeCount]Shape{
	ShapeI: {0, 2, 4, 6},
	ShapeL: {0, 2, 4, 5},
	ShapeJ: {1, 3, 4, 5},
	ShapeT: {1, 2, 3, 5},
	ShapeO: {0, 1, 2, 3},
	ShapeS: {1, 2, 3, 4},
	ShapeZ: {0, 2, 3, 5},
}

// SpawnCol is the board column of template column 0.
const SpawnCol = 4

var shapeNames = [ShapeCount]string{"I", "L", "J", "T", "O", "S", "Z"}

func (k ShapeKind) String() string {
	if int(k) < ShapeCount {
		return shapeNames[k]
	}
	return "?"
}

// Shape returns the template for k.
func (k ShapeKind) Shape() Shape {
	return Shapes[k]
}

// SpawnTiles returns the template cells placed at the top of the board,
// centered horizontally.
func (s Shape) SpawnTiles() [4]Position {
	var tiles [4]Position
	for i, idx := range s {
		tiles[i] = Position{Row: idx / 2, Col: SpawnCol + idx%2}
	}
	return tiles
}
