package model

import (
	"testing"
)

var glider = []Coord{{0, 2}, {1, 2}, {2, 2}, {1, 0}, {2, 1}}

func mustGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func fill(g *Grid) {
	for y := range g.Height() {
		for x := range g.Width() {
			g.cells[y][x].alive = true
		}
	}
}

// expectAlive fails unless exactly the given cells are alive
func expectAlive(t *testing.T, g *Grid, alive []Coord) {
	t.Helper()
	expects := make(map[Coord]bool, len(alive))
	for _, c := range alive {
		expects[c] = true
	}
	for y := range g.Height() {
		for x := range g.Width() {
			if got, want := g.Get(x, y), expects[Coord{x, y}]; got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want)
			}
		}
	}
}
