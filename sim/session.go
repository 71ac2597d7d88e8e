package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conlife/model"
	"github.com/sheikhrachel/conlife/pattern"
	"github.com/sheikhrachel/conlife/utils"
)

// State describes how a session is evolving
type State int

const (
	Active State = iota
	Stagnant
	Extinct
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Stagnant:
		return "Stagnant"
	case Extinct:
		return "Extinct"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is a summary of the grid after a generation
type Status struct {
	Generation int
	Living     int
	Density    float64
	State      State
}

// Session runs a single grid from a loaded pattern
type Session struct {
	config utils.Config
	grid   *model.Grid
	pool   *model.StatePool
	stats  *utils.Stats
	out    io.Writer

	generation    int
	stagnantCount int
	history       []string // recent grid hashes for cycle detection
}

// NewSession builds a grid per config and loads p onto it. out receives
// status lines and may be nil.
func NewSession(config utils.Config, p *pattern.Pattern, out io.Writer) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] invalid config")
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create grid")
	}

	if p != nil {
		if err = grid.Load(p.Coordinates(), patternOffset(config, p)); err != nil {
			return nil, errors.Wrapf(err, "[NewSession] failed to load pattern %q", p.Name)
		}
	}

	var pool *model.StatePool
	if config.UseMemoryPool {
		pool = model.NewStatePool()
	}

	s := &Session{
		config: config,
		grid:   grid,
		pool:   pool,
		stats:  utils.NewStats(),
		out:    out,
	}
	s.updateHistory(grid.Hash())
	s.logf("Grid: %dx%d | Initial living cells: %d\n", grid.Width(), grid.Height(), grid.CountLivingCells())
	return s, nil
}

// NewSessionFromConfig loads the pattern named by config.PatternFile, if any, and builds a session
func NewSessionFromConfig(config utils.Config, out io.Writer) (*Session, error) {
	var p *pattern.Pattern
	if config.PatternFile != "" {
		var err error
		if p, err = pattern.FromFile(config.PatternFile); err != nil {
			return nil, errors.Wrap(err, "[NewSessionFromConfig] failed to load pattern")
		}
	}
	return NewSession(config, p, out)
}

// patternOffset places the pattern at the configured offset, or in the middle of the grid
func patternOffset(config utils.Config, p *pattern.Pattern) model.Coord {
	if !config.CenterPattern {
		return model.Coord{X: config.OffsetX, Y: config.OffsetY}
	}
	w, h := p.Bounds()
	return model.Coord{X: (config.Width - w) / 2, Y: (config.Height - h) / 2}
}

// Grid returns the grid being simulated
func (s *Session) Grid() *model.Grid {
	return s.grid
}

// Stats returns the running performance stats
func (s *Session) Stats() *utils.Stats {
	return s.stats
}

// Generation returns the number of generations advanced so far
func (s *Session) Generation() int {
	return s.generation
}

// Step advances one generation and reports the resulting status
func (s *Session) Step() Status {
	start := time.Now()
	s.grid.Step(s.config, s.pool)
	s.generation++

	living := s.grid.CountLivingCells()
	s.stats.Update(s.generation, living, time.Since(start))

	st := Status{
		Generation: s.generation,
		Living:     living,
		Density:    float64(living) / float64(s.grid.Width()*s.grid.Height()) * 100,
		State:      Active,
	}

	hash := s.grid.Hash()
	if s.isStagnant(hash) {
		s.stagnantCount++
		st.State = Stagnant
	} else {
		s.stagnantCount = 0
	}
	s.updateHistory(hash)

	if living == 0 {
		st.State = Extinct
	}
	return st
}

// updateHistory adds current state to history and maintains size
func (s *Session) updateHistory(hash string) {
	if s.config.HistorySize == 0 {
		return
	}
	s.history = append(s.history, hash)
	if len(s.history) > s.config.HistorySize {
		s.history = s.history[1:]
	}
}

// isStagnant checks if the grid repeats one of the last three recorded states:
// a still life, or an oscillator of period 2 or 3
func (s *Session) isStagnant(hash string) bool {
	for i := 1; i <= 3 && i <= len(s.history); i++ {
		if s.history[len(s.history)-i] == hash {
			return true
		}
	}
	return false
}

// Run steps until MaxGenerations (when positive) or n generations (when positive)
// are reached, the grid dies out, it stays stagnant for StagnationThreshold
// consecutive steps, or ctx is done.
func (s *Session) Run(ctx context.Context, n int) (Status, error) {
	limit := n
	if limit <= 0 || (s.config.MaxGenerations > 0 && s.config.MaxGenerations < limit) {
		limit = s.config.MaxGenerations
	}

	st := Status{
		Generation: s.generation,
		Living:     s.grid.CountLivingCells(),
		State:      Active,
	}
	if st.Living == 0 {
		st.State = Extinct
		return st, nil
	}

	for i := 0; limit <= 0 || i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return st, errors.Wrapf(err, "[Run] stopped at generation %d", s.generation)
		}

		st = s.Step()
		s.logf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
			st.Generation, st.Living, st.Density, st.State)

		if st.State == Extinct {
			return st, nil
		}
		if s.config.StagnationThreshold > 0 && s.stagnantCount >= s.config.StagnationThreshold {
			return st, nil
		}
	}

	s.logf("Reached generation limit (%d) | Avg Pop: %.1f | Runtime: %.1fs\n",
		limit, s.stats.AveragePopulation, s.stats.Runtime().Seconds())
	return st, nil
}

func (s *Session) logf(format string, args ...any) {
	if s.out == nil {
		return
	}
	fmt.Fprintf(s.out, format, args...)
}
