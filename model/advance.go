package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/conlife/rules"
	"github.com/sheikhrachel/conlife/utils"
)

// capture copies every cell's alive flag into s.
// It must finish before any cell of the next generation is written.
func (g *Grid) capture(s *State) {
	for y := range g.height {
		row := s.cells[y]
		for x := range g.width {
			row[x] = g.cells[y][x].alive
		}
	}
}

// Advance moves the grid on by one generation using all CPUs.
// The previous generation is kept in a buffer owned by the grid and reused every call.
func (g *Grid) Advance() {
	if g.snapshot == nil {
		g.snapshot = NewState(g.width, g.height)
	}
	g.advance(g.snapshot, runtime.NumCPU())
}

// AdvanceWith is Advance with the snapshot buffer taken from pool.
// A nil pool falls back to the grid's own buffer.
func (g *Grid) AdvanceWith(pool *StatePool) {
	if pool == nil {
		g.Advance()
		return
	}
	s := pool.Get(g.width, g.height)
	g.advance(s, runtime.NumCPU())
	pool.Put(s)
}

// AdvanceSequential moves the grid on by one generation on the calling goroutine
func (g *Grid) AdvanceSequential() {
	if g.snapshot == nil {
		g.snapshot = NewState(g.width, g.height)
	}
	g.advance(g.snapshot, 1)
}

// advance splits rows across workers. Workers read only the snapshot and write
// only their own rows, so no cell sees a mix of old and new neighbour states.
func (g *Grid) advance(s *State, numWorkers int) {
	g.capture(s)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.applyRules(s, Rect{MinX: 0, MaxX: g.width - 1, MinY: startRow, MaxY: endRow - 1})
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()
	g.activeBounds.valid = false
}

// applyRules rewrites every cell inside r from the snapshot s
func (g *Grid) applyRules(s *State, r Rect) {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			cell := &g.cells[y][x]
			cell.alive = rules.Next(liveNeighbours(s, cell.neighbours), s.cells[y][x])
		}
	}
}

// AdvanceBounded moves the grid on by one generation, only evaluating the box of
// living cells grown by one. Everything outside that box has no live neighbours
// and stays dead, so the result matches Advance.
func (g *Grid) AdvanceBounded(pool *StatePool) {
	box, ok := g.BoundingBox()
	if !ok {
		return
	}

	var s *State
	if pool != nil {
		s = pool.Get(g.width, g.height)
		defer pool.Put(s)
	} else {
		if g.snapshot == nil {
			g.snapshot = NewState(g.width, g.height)
		}
		s = g.snapshot
	}
	g.capture(s)

	// Process only the active region + 1 margin
	g.applyRules(s, Rect{
		MinX: max(0, box.MinX-1),
		MaxX: min(g.width-1, box.MaxX+1),
		MinY: max(0, box.MinY-1),
		MaxY: min(g.height-1, box.MaxY+1),
	})

	g.calculateActiveBounds()
}

// Step advances the grid once using the strategy selected by config
func (g *Grid) Step(config utils.Config, pool *StatePool) {
	switch {
	case config.UseBoundedGrid:
		g.AdvanceBounded(pool)
	case config.UseParallel:
		g.AdvanceWith(pool)
	case pool != nil:
		s := pool.Get(g.width, g.height)
		g.advance(s, 1)
		pool.Put(s)
	default:
		g.AdvanceSequential()
	}
}
