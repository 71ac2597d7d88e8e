// Package pattern reads initial cell configurations written as whitespace
// separated (x,y) pairs, for example a glider:
//
//	(0,2) (1,2) (2,2) (1,0) (2,1)
//
// Parentheses are optional and whitespace around the comma is ignored.
package pattern

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conlife/model"
)

var (
	// ErrNoCoordinates is returned when the input holds no coordinates at all
	ErrNoCoordinates = errors.New("no coordinates found")
	// ErrDuplicateCoordinate is returned when a coordinate appears more than once
	ErrDuplicateCoordinate = errors.New("duplicate coordinate")
	// ErrBadInput is returned for tokens that are not a pair of non-negative integers
	ErrBadInput = errors.New("bad input")
)

var commaSpacing = regexp.MustCompile(`\s*,\s*`)

// Pattern is an ordered set of live cell coordinates
type Pattern struct {
	Name        string
	coordinates []model.Coord
}

// Parse reads a pattern from its text form
func Parse(text string) (*Pattern, error) {
	text = strings.NewReplacer("(", " ", ")", " ").Replace(text)
	text = commaSpacing.ReplaceAllString(text, ",")

	var (
		coords = []model.Coord{}
		seen   = make(map[model.Coord]struct{})
	)
	for _, token := range strings.Fields(text) {
		c, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[c]; ok {
			return nil, errors.Wrapf(ErrDuplicateCoordinate, "[Parse] (%d,%d)", c.X, c.Y)
		}
		seen[c] = struct{}{}
		coords = append(coords, c)
	}

	if len(coords) == 0 {
		return nil, errors.WithStack(ErrNoCoordinates)
	}
	return &Pattern{coordinates: coords}, nil
}

func parseToken(token string) (model.Coord, error) {
	parts := strings.Split(token, ",")
	if len(parts) != 2 {
		return model.Coord{}, errors.Wrapf(ErrBadInput, "[parseToken] %q is not an x,y pair", token)
	}

	var vals [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return model.Coord{}, errors.Wrapf(ErrBadInput, "[parseToken] %q is not a non-negative integer in %q", p, token)
		}
		vals[i] = v
	}
	return model.Coord{X: vals[0], Y: vals[1]}, nil
}

// FromFile reads a pattern file, usually with a .life extension.
// The pattern is named after the file.
func FromFile(filename string) (*Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[FromFile] failed to read file: %+v", filename)
	}

	p, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[FromFile] failed to parse file: %+v", filename)
	}
	p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return p, nil
}

// Coordinates returns the pattern's coordinates in input order
func (p *Pattern) Coordinates() []model.Coord {
	out := make([]model.Coord, len(p.coordinates))
	copy(out, p.coordinates)
	return out
}

// Len returns the number of live cells in the pattern
func (p *Pattern) Len() int {
	return len(p.coordinates)
}

// Bounds returns the width and height of the smallest box anchored at (0,0) holding the pattern
func (p *Pattern) Bounds() (width, height int) {
	for _, c := range p.coordinates {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	return
}
