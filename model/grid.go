package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Coord is a grid position, X is the column and Y the row
type Coord struct {
	X, Y int
}

// Add returns the coordinate shifted by the offset o
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Cell is a single grid position together with its precomputed neighbourhood
type Cell struct {
	alive      bool
	neighbours []Coord
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c.alive
}

// Grid is a fixed-size, non-wrapping Game of Life board.
// Cells are indexed as cells[y][x].
type Grid struct {
	width  int
	height int
	cells  [][]Cell

	// snapshot holds the previous generation while Advance runs
	snapshot *State

	activeBounds struct {
		Rect
		valid bool
	}
}

// Rect is an inclusive bounding box
type Rect struct {
	MinX, MaxX, MinY, MaxY int
}

// NewGrid creates a grid with every cell dead and neighbour lists precomputed
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}

	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
	g.computeNeighbours()
	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d, %d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[y][x].alive = alive
	g.activeBounds.valid = false
	return nil
}

// Get returns the state of a cell, positions off the grid are dead
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x].alive
}

// Cell returns a copy of the cell at (x, y)
func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "[Cell] (%d, %d) on %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x].alive = false
		}
	}
	g.activeBounds.valid = false
}

// Load marks each coordinate, shifted by offset, as alive.
// Either every coordinate is applied or none is: the whole set is bounds-checked first.
func (g *Grid) Load(coords []Coord, offset Coord) error {
	for _, c := range coords {
		p := c.Add(offset)
		if !g.InBounds(p.X, p.Y) {
			return errors.Wrapf(ErrOutOfBounds,
				"[Load] (%d, %d) at offset (%d, %d) lands on (%d, %d), grid is %dx%d",
				c.X, c.Y, offset.X, offset.Y, p.X, p.Y, g.width, g.height)
		}
	}
	for _, c := range coords {
		p := c.Add(offset)
		g.cells[p.Y][p.X].alive = true
	}
	g.activeBounds.valid = false
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				count++
			}
		}
	}
	return
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].alive {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.Rect = Rect{MinX: x, MaxX: x, MinY: y, MaxY: y}
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.MinX = min(g.activeBounds.MinX, x)
			g.activeBounds.MaxX = max(g.activeBounds.MaxX, x)
			g.activeBounds.MinY = min(g.activeBounds.MinY, y)
			g.activeBounds.MaxY = max(g.activeBounds.MaxY, y)
		}
	}
}

// BoundingBox returns the smallest rectangle holding every living cell.
// ok is false when the grid is empty.
func (g *Grid) BoundingBox() (r Rect, ok bool) {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	return g.activeBounds.Rect, g.activeBounds.valid
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
