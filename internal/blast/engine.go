package blast

import "fmt"

// LineBonus is the score granted for every cleared row or column.
const LineBonus = 8

// Position is a board coordinate used as a piece anchor.
type Position struct {
	Row, Col int
}

// CheckPlacement reports why the piece cannot be anchored at
// (baseRow, baseCol), or nil if it fits. Each offset (dx, dy) targets
// (baseRow+dy, baseCol+dx). The first violation found is returned.
func CheckPlacement(b *Board, p *Piece, baseRow, baseCol int) error {
	for _, c := range p.Cells {
		row, col := baseRow+c.DY, baseCol+c.DX
		if !InBounds(row, col) {
			return ErrOutOfBounds
		}
		if b.IsOccupied(row, col) {
			return ErrCellOccupied
		}
	}
	return nil
}

// CanPlace reports whether every cell of the piece lands on an empty cell
// inside the board when anchored at (baseRow, baseCol).
func CanPlace(b *Board, p *Piece, baseRow, baseCol int) bool {
	return CheckPlacement(b, p, baseRow, baseCol) == nil
}

// Place fills the piece's target cells with its color.
// The placement must be legal; an illegal one panics and leaves b unchanged.
func Place(b *Board, p *Piece, baseRow, baseCol int) {
	if err := CheckPlacement(b, p, baseRow, baseCol); err != nil {
		panic(fmt.Sprintf("blast: place %s at (%d,%d): %v", p.Name, baseRow, baseCol, err))
	}
	for _, c := range p.Cells {
		b.Occupy(baseRow+c.DY, baseCol+c.DX, p.Color)
	}
}

// ClearFullLines empties every full row and column and returns their
// indices in ascending order.
//
// Rows and columns are both detected on the same snapshot before anything is
// cleared, so a column crossing a full row still counts when it is full.
func ClearFullLines(b *Board) (rows, cols []int) {
	for i := range Size {
		if b.IsRowFull(i) {
			rows = append(rows, i)
		}
		if b.IsColFull(i) {
			cols = append(cols, i)
		}
	}

	for _, row := range rows {
		for col := range Size {
			b.Clear(row, col)
		}
	}
	for _, col := range cols {
		for row := range Size {
			b.Clear(row, col)
		}
	}

	return rows, cols
}

// PlacementScore returns the points earned for placing p and clearing
// the given number of lines.
func PlacementScore(p *Piece, lines int) int {
	return p.CellCount() + LineBonus*lines
}

// FitsAnywhere reports whether the piece has at least one legal anchor.
func FitsAnywhere(b *Board, p *Piece) bool {
	for row := range Size {
		for col := range Size {
			if CanPlace(b, p, row, col) {
				return true
			}
		}
	}
	return false
}

// ValidPositions lists every legal anchor for the piece in row-major order.
func ValidPositions(b *Board, p *Piece) []Position {
	var positions []Position
	for row := range Size {
		for col := range Size {
			if CanPlace(b, p, row, col) {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// HasAnyValidMove reports whether some non-nil offered piece fits anywhere.
// With no pieces left it returns true: an exhausted offer awaits a refill and
// is never a loss.
func HasAnyValidMove(b *Board, offered []*Piece) bool {
	active := 0
	for _, p := range offered {
		if p == nil {
			continue
		}
		active++
		if FitsAnywhere(b, p) {
			return true
		}
	}
	return active == 0
}
