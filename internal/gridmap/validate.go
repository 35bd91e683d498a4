package gridmap

import (
	"errors"
	"fmt"
)

// Validation codes reported by map construction.
const (
	CodeEmpty    = "EMPTY_MAP"
	CodeRagged   = "RAGGED_MAP"
	CodeBadCell  = "BAD_CELL"
	CodeCellSize = "BAD_CELL_SIZE"
)

// Sentinel errors, matched with errors.Is against a ValidationError.
var (
	ErrEmpty    = errors.New("gridmap: empty map")
	ErrRagged   = errors.New("gridmap: rows have different lengths")
	ErrBadCell  = errors.New("gridmap: unknown cell value")
	ErrCellSize = errors.New("gridmap: cell size must be positive")
)

// ValidationError contains details about a malformed map.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is maps validation codes onto the package sentinel errors.
func (e ValidationError) Is(target error) bool {
	switch e.Code {
	case CodeEmpty:
		return target == ErrEmpty
	case CodeRagged:
		return target == ErrRagged
	case CodeBadCell:
		return target == ErrBadCell
	case CodeCellSize:
		return target == ErrCellSize
	}
	return false
}

// validateShape checks that cells form a non-empty rectangle and that the
// cell size is usable.
func validateShape(cells [][]bool, cellSize float64) error {
	if !(cellSize > 0) {
		return ValidationError{
			Code:    CodeCellSize,
			Message: fmt.Sprintf("cell size %v is not positive", cellSize),
		}
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return ValidationError{
			Code:    CodeEmpty,
			Message: "map has zero width or height",
		}
	}

	w := len(cells[0])
	for row, line := range cells {
		if len(line) != w {
			return ValidationError{
				Code:    CodeRagged,
				Message: fmt.Sprintf("row %d has %d cells, expected %d", row, len(line), w),
			}
		}
	}
	return nil
}
