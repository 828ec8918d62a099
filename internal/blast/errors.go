package blast

import (
	"errors"
	"fmt"
)

// Placement errors. Every rejected placement leaves the session untouched.
var (
	// ErrInvalidSlot is returned when the slot index is out of range or the
	// slot has already been used.
	ErrInvalidSlot = errors.New("blast: invalid slot")

	// ErrIllegalPlacement is the parent of every rule violation.
	ErrIllegalPlacement = errors.New("blast: illegal placement")

	// ErrOutOfBounds is returned when a piece cell would land off the board.
	ErrOutOfBounds = fmt.Errorf("%w: out of bounds", ErrIllegalPlacement)

	// ErrCellOccupied is returned when a piece cell would land on a filled cell.
	ErrCellOccupied = fmt.Errorf("%w: cell occupied", ErrIllegalPlacement)

	// ErrGameOver is returned for placements attempted after the game ended.
	ErrGameOver = errors.New("blast: game over")
)
