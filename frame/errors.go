package frame

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError is the panic value for a coordinate outside the grid. It is a
// programming error and callers are not expected to recover from it.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d grid: %v", err.X, err.Y, err.Width, err.Height, ErrIndexOutOfRange)
}

func (err *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckBounds panics with an *IndexError when (x, y) is outside a
// width x height grid.
func CheckBounds(x, y, width, height int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		panic(&IndexError{X: x, Y: y, Width: width, Height: height})
	}
}
