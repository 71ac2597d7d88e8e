package model

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestNeighbourCounts(t *testing.T) {
	t.Parallel()
	sizes := []struct{ width, height int }{
		{2, 2}, {3, 3}, {8, 8}, {2, 7}, {9, 4}, {16, 5},
	}

	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(t *testing.T) {
			g := mustGrid(t, sz.width, sz.height)
			for y := range g.Height() {
				for x := range g.Width() {
					n, err := g.Neighbours(x, y)
					if err != nil {
						t.Fatal(err)
					}

					onX := x == 0 || x == g.Width()-1
					onY := y == 0 || y == g.Height()-1
					want := 8
					switch {
					case onX && onY:
						want = 3
					case onX || onY:
						want = 5
					}
					if len(n) != want {
						t.Fatalf("(%d,%d) has %d neighbours, want %d", x, y, len(n), want)
					}
					checkNeighbourList(t, g, Coord{x, y}, n)
				}
			}
		})
	}
}

func TestNeighbourStrips(t *testing.T) {
	t.Parallel()
	tests := []struct {
		width, height int
		at            Coord
		want          int
	}{
		{width: 1, height: 1, at: Coord{0, 0}, want: 0},
		{width: 3, height: 1, at: Coord{0, 0}, want: 1},
		{width: 3, height: 1, at: Coord{1, 0}, want: 2},
		{width: 1, height: 4, at: Coord{0, 2}, want: 2},
	}

	for _, tt := range tests {
		g := mustGrid(t, tt.width, tt.height)
		n, err := g.Neighbours(tt.at.X, tt.at.Y)
		if err != nil {
			t.Fatal(err)
		}
		if len(n) != tt.want {
			t.Errorf("%dx%d (%d,%d) has %d neighbours, want %d",
				tt.width, tt.height, tt.at.X, tt.at.Y, len(n), tt.want)
		}
		checkNeighbourList(t, g, tt.at, n)
	}
}

func checkNeighbourList(t *testing.T, g *Grid, self Coord, n []Coord) {
	t.Helper()
	seen := make(map[Coord]bool, len(n))
	for _, c := range n {
		if c == self {
			t.Fatalf("%v lists itself as a neighbour", self)
		}
		if !g.InBounds(c.X, c.Y) {
			t.Fatalf("%v lists %v which is off the grid", self, c)
		}
		if abs(c.X-self.X) > 1 || abs(c.Y-self.Y) > 1 {
			t.Fatalf("%v lists %v which is not adjacent", self, c)
		}
		if seen[c] {
			t.Fatalf("%v lists %v twice", self, c)
		}
		seen[c] = true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNeighboursReturnsCopy(t *testing.T) {
	g := mustGrid(t, 3, 3)
	n, err := g.Neighbours(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	n[0] = Coord{99, 99}

	again, err := g.Neighbours(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if again[0] == (Coord{99, 99}) {
		t.Fatal("Neighbours exposed the internal list")
	}
}

func TestNeighboursOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if _, err := g.Neighbours(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Neighbours(3, 0) error = %v, want ErrOutOfBounds", err)
	}
}
