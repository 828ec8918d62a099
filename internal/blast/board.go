package blast

import "fmt"

// Size is the board dimension in cells.
const Size = 8

// Board is the 8x8 play field. Each cell holds the color token of the piece
// that filled it, or the empty string when the cell is free. Board is an
// array, so assigning it copies the whole grid.
type Board [Size][Size]string

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsOccupied reports whether the cell holds a piece.
// Out-of-range coordinates panic.
func (b *Board) IsOccupied(row, col int) bool {
	return b[row][col] != ""
}

// Cell returns the color token stored at (row, col), empty if free.
func (b *Board) Cell(row, col int) string {
	return b[row][col]
}

// Occupy marks the cell as filled with the given color token.
// It performs no legality checks; callers validate first.
func (b *Board) Occupy(row, col int, token string) {
	if token == "" {
		panic(fmt.Sprintf("blast: occupy (%d,%d) with empty token", row, col))
	}
	b[row][col] = token
}

// Clear empties the cell.
func (b *Board) Clear(row, col int) {
	b[row][col] = ""
}

// IsRowFull reports whether every cell in the row is occupied.
func (b *Board) IsRowFull(row int) bool {
	for col := range Size {
		if b[row][col] == "" {
			return false
		}
	}
	return true
}

// IsColFull reports whether every cell in the column is occupied.
func (b *Board) IsColFull(col int) bool {
	for row := range Size {
		if b[row][col] == "" {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	*b = Board{}
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for row := range Size {
		for col := range Size {
			if b[row][col] != "" {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	return b.FilledCount() == 0
}
