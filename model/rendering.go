package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	aliveHeader = "------- Alive cells ---------"
	aliveFooter = "-----------------------------"
)

// AliveCells returns the coordinates of every living cell, row by row, then by column
func (g *Grid) AliveCells() []Coord {
	var alive []Coord
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				alive = append(alive, Coord{X: x, Y: y})
			}
		}
	}
	return alive
}

// DumpAliveCells writes the living coordinates to w for debugging
func (g *Grid) DumpAliveCells(w io.Writer) error {
	var b strings.Builder
	b.WriteString(aliveHeader)
	b.WriteByte('\n')
	for _, c := range g.AliveCells() {
		fmt.Fprintf(&b, "(%d, %d), ", c.X, c.Y)
	}
	b.WriteByte('\n')
	b.WriteString(aliveFooter)
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "[DumpAliveCells] failed to write")
	}
	return nil
}

// String renders the grid as rows of blocks, one line per row
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(gridPosBlock) + 1))
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
