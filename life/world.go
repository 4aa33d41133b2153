// Package life runs Conway's Game of Life over a grid captured from a frame.
package life

import (
	"fmt"

	"vsasakiv/lifeframe/frame"
)

const (
	dead  = 0
	alive = 255
)

// Cell is the position of a single cell, X across and Y down.
type Cell struct {
	X, Y int
}

// World is one generation. Cells hold alive (255) or dead (0) and are indexed
// [y][x]. A World is not modified by Step.
type World struct {
	width  int
	height int
	cells  [][]uint8
}

func NewWorld(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world size %dx%d: %w", width, height, frame.ErrInvalidArgument)
	}
	return &World{width: width, height: height, cells: make2DArray(height, width)}, nil
}

func make2DArray(height, width int) [][]uint8 {
	array := make([][]uint8, height)
	for i := range array {
		array[i] = make([]uint8, width)
	}
	return array
}

// Capture builds a world from the cells of f, isLive decides which colours
// are alive.
func Capture(f *frame.Frame, isLive func(frame.Pixel) bool) *World {
	world := World{width: f.Width(), height: f.Height(), cells: make2DArray(f.Height(), f.Width())}
	for y := range world.height {
		for x := range world.width {
			if isLive(f.Cell(x, y)) {
				world.cells[y][x] = alive
			}
		}
	}
	return &world
}

func (world *World) Width() int  { return world.width }
func (world *World) Height() int { return world.height }

// Alive panics with a *frame.IndexError outside the grid, like Frame.Cell.
func (world *World) Alive(x, y int) bool {
	frame.CheckBounds(x, y, world.width, world.height)
	return world.cells[y][x] == alive
}

func (world *World) Set(x, y int, isAlive bool) {
	frame.CheckBounds(x, y, world.width, world.height)
	if isAlive {
		world.cells[y][x] = alive
	} else {
		world.cells[y][x] = dead
	}
}

func (world *World) AliveCount() int {
	count := 0
	for _, row := range world.cells {
		for _, cell := range row {
			if cell == alive {
				count++
			}
		}
	}
	return count
}

// AliveCells lists live cells in row-major order.
func (world *World) AliveCells() []Cell {
	var cells []Cell
	for y, row := range world.cells {
		for x, cell := range row {
			if cell == alive {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Policy renders the world into a frame of the same size.
func (world *World) Policy(palette frame.Palette) frame.FillPolicy {
	return func(x, y int) frame.Pixel {
		return palette.Color(world.cells[y][x] == alive)
	}
}
