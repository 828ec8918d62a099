// Package blast implements the Block Blast rules: the piece catalog, the 8x8
// board, placement and line clearing, scoring, and the turn sequencing of a
// single game session. It has no rendering, timing, or I/O concerns; callers
// feed it explicit moves and render the structured results it returns.
package blast

import (
	"math/rand"
)

// Offset is a cell position relative to a piece's anchor.
// DX moves along columns, DY along rows.
type Offset struct {
	DX, DY int
}

// Piece is an immutable polyomino: a name, the offsets of its cells relative
// to the anchor, and a display color. Pieces handed out by the catalog are
// shared and must not be modified.
type Piece struct {
	Name  string
	Cells []Offset
	Color string
}

// CellCount returns the number of cells the piece occupies.
func (p *Piece) CellCount() int {
	return len(p.Cells)
}

// Bounds returns the width and height of the piece's bounding box.
func (p *Piece) Bounds() (w, h int) {
	minX, minY := p.Cells[0].DX, p.Cells[0].DY
	maxX, maxY := minX, minY
	for _, c := range p.Cells[1:] {
		minX = min(minX, c.DX)
		minY = min(minY, c.DY)
		maxX = max(maxX, c.DX)
		maxY = max(maxY, c.DY)
	}
	return maxX - minX + 1, maxY - minY + 1
}

// Origin returns the smallest DX and DY used by the piece, so previews can
// be drawn from the top-left corner of the bounding box.
func (p *Piece) Origin() (dx, dy int) {
	dx, dy = p.Cells[0].DX, p.Cells[0].DY
	for _, c := range p.Cells[1:] {
		dx = min(dx, c.DX)
		dy = min(dy, c.DY)
	}
	return dx, dy
}

// Has reports whether the piece covers the given offset.
func (p *Piece) Has(dx, dy int) bool {
	for _, c := range p.Cells {
		if c.DX == dx && c.DY == dy {
			return true
		}
	}
	return false
}

// catalog is the fixed set of shapes offered during play.
var catalog = [...]Piece{
	{Name: "Dot", Cells: []Offset{{0, 0}}, Color: "#ff6b6b"},
	{Name: "Line2", Cells: []Offset{{0, 0}, {1, 0}}, Color: "#4ecdc4"},
	{Name: "Line3", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}}, Color: "#1a535c"},
	{Name: "Line4", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Color: "#ff9f1c"},
	{Name: "Tall2", Cells: []Offset{{0, 0}, {0, 1}}, Color: "#7b2cbf"},
	{Name: "Tall3", Cells: []Offset{{0, 0}, {0, 1}, {0, 2}}, Color: "#3a86ff"},
	{Name: "Square2", Cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color: "#06d6a0"},
	{Name: "L3", Cells: []Offset{{0, 0}, {0, 1}, {1, 1}}, Color: "#f15bb5"},
	{Name: "L4", Cells: []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}}, Color: "#9b5de5"},
	{Name: "T4", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}}, Color: "#e76f51"},
	{Name: "Z4", Cells: []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Color: "#2a9d8f"},
}

// Rand is the random source consumed when pieces are offered.
// *rand.Rand satisfies it; tests may substitute a scripted source.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AllShapes returns the catalog in its fixed order.
func AllShapes() []*Piece {
	shapes := make([]*Piece, len(catalog))
	for i := range catalog {
		shapes[i] = &catalog[i]
	}
	return shapes
}

// ShapeCount returns the number of catalog entries.
func ShapeCount() int {
	return len(catalog)
}

// RandomPiece picks a catalog entry uniformly at random.
func RandomPiece(rng Rand) *Piece {
	return &catalog[rng.Intn(len(catalog))]
}

// PieceByName looks up a catalog entry by name.
func PieceByName(name string) (*Piece, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], true
		}
	}
	return nil, false
}
