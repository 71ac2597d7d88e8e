package model

import (
	"slices"

	"github.com/pkg/errors"
)

// computeNeighbours fills in the Moore neighbourhood of every cell.
// The grid does not wrap, so candidates off the edge are dropped: corners get 3
// neighbours, edges 5 and interior cells 8. Only called from NewGrid.
func (g *Grid) computeNeighbours() {
	for y := range g.height {
		ys := axisCandidates(y, g.height)
		for x := range g.width {
			xs := axisCandidates(x, g.width)

			neighbours := make([]Coord, 0, len(xs)*len(ys)-1)
			for _, nx := range xs {
				for _, ny := range ys {
					if nx == x && ny == y {
						continue
					}
					neighbours = append(neighbours, Coord{X: nx, Y: ny})
				}
			}
			g.cells[y][x].neighbours = neighbours
		}
	}
}

// axisCandidates returns i and whichever of i-1, i+1 lie in [0, size)
func axisCandidates(i, size int) []int {
	out := make([]int, 0, 3)
	out = append(out, i)
	if i > 0 {
		out = append(out, i-1)
	}
	if i < size-1 {
		out = append(out, i+1)
	}
	return out
}

// Neighbours returns a copy of the precomputed neighbour list of (x, y)
func (g *Grid) Neighbours(x, y int) ([]Coord, error) {
	if !g.InBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[Neighbours] (%d, %d) on %dx%d grid", x, y, g.width, g.height)
	}
	return slices.Clone(g.cells[y][x].neighbours), nil
}

// liveNeighbours counts how many of the given coordinates are alive in s
func liveNeighbours(s *State, neighbours []Coord) (count int) {
	for _, n := range neighbours {
		if s.cells[n.Y][n.X] {
			count++
		}
	}
	return
}
