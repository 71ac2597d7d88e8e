package model

import "sync"

// State is a plain alive/dead buffer used to hold a previous generation
type State struct {
	width  int
	height int
	cells  [][]bool
}

// NewState allocates a dead state buffer of the given size
func NewState(width, height int) *State {
	s := &State{}
	s.Reset(width, height)
	return s
}

// Reset resizes the buffer, reusing rows where the width already matches
func (s *State) Reset(width, height int) {
	s.width = width
	s.height = height

	if len(s.cells) != height {
		s.cells = make([][]bool, height)
	}
	for i := range s.cells {
		if len(s.cells[i]) != width {
			s.cells[i] = make([]bool, width)
		} else {
			clear(s.cells[i])
		}
	}
}

// Alive reports the recorded state of (x, y)
func (s *State) Alive(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y][x]
}

// StatePool recycles snapshot buffers between Advance calls, including across grids
type StatePool struct {
	pool sync.Pool
}

func NewStatePool() *StatePool {
	return &StatePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &State{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, resetting its dimensions
func (p *StatePool) Get(width, height int) *State {
	s := p.pool.Get().(*State)
	s.Reset(width, height)
	return s
}

// Put returns a buffer to the pool
func (p *StatePool) Put(s *State) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
