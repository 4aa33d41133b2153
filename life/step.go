package life

import (
	"fmt"
	"strings"

	"vsasakiv/lifeframe/frame"
)

// Boundary decides what lies beyond the edges of the grid.
type Boundary int

const (
	// Torus wraps each edge around to the opposite one.
	Torus Boundary = iota
	// DeadBorder treats every cell outside the grid as dead.
	DeadBorder
)

func (boundary Boundary) String() string {
	switch boundary {
	case Torus:
		return "torus"
	case DeadBorder:
		return "dead"
	}
	return fmt.Sprintf("Boundary(%d)", int(boundary))
}

func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(name) {
	case "torus", "wrap":
		return Torus, nil
	case "dead":
		return DeadBorder, nil
	}
	return 0, fmt.Errorf("unknown boundary %q: %w", name, frame.ErrInvalidArgument)
}

// Step returns the next generation: a live cell with two or three live
// neighbours survives, a dead cell with exactly three comes alive and every
// other cell is dead. Rows are shared out between threads workers.
func (world *World) Step(boundary Boundary, threads int) *World {
	if threads < 1 {
		threads = 1
	}
	if threads > world.height {
		threads = world.height
	}

	next := World{width: world.width, height: world.height}
	if threads == 1 {
		next.cells = world.run(0, world.height, boundary)
		return &next
	}

	height := world.height / threads
	channels := make([]chan [][]uint8, threads)
	for i := range threads {
		channels[i] = make(chan [][]uint8)
		endY := height * (i + 1)
		if i == threads-1 {
			endY = world.height
		}
		go world.worker(height*i, endY, boundary, channels[i])
	}
	for i := range threads {
		next.cells = append(next.cells, <-channels[i]...)
	}
	return &next
}

func (world *World) worker(startY, endY int, boundary Boundary, out chan<- [][]uint8) {
	out <- world.run(startY, endY, boundary)
}

// run computes rows [startY, endY) of the next generation.
func (world *World) run(startY, endY int, boundary Boundary) [][]uint8 {
	slice := make2DArray(endY-startY, world.width)
	for i := range slice {
		y := startY + i
		for x := range world.width {
			if nextAlive(world.cells[y][x] == alive, world.liveNeighbours(x, y, boundary)) {
				slice[i][x] = alive
			}
		}
	}
	return slice
}

func (world *World) liveNeighbours(x, y int, boundary Boundary) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if boundary == Torus {
				nx = (nx + world.width) % world.width
				ny = (ny + world.height) % world.height
			} else if nx < 0 || nx >= world.width || ny < 0 || ny >= world.height {
				continue
			}
			if world.cells[ny][nx] == alive {
				count++
			}
		}
	}
	return count
}

func nextAlive(isAlive bool, neighbours int) bool {
	return (isAlive && neighbours == 2) || neighbours == 3
}

// Run advances world by turns generations and returns the last one.
func Run(world *World, turns int, boundary Boundary, threads int) *World {
	for range turns {
		world = world.Step(boundary, threads)
	}
	return world
}
