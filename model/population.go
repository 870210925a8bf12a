package model

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidCoordinate is returned when a coordinate falls outside the board.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Population is the set of live cells of one generation.
// It is never modified after construction; every generation is a new value,
// so callers may keep references to past populations.
type Population struct {
	cells map[Coord]struct{}
}

// NewPopulation builds a population from coords, rejecting anything off the board.
// Duplicate coordinates collapse into one cell.
func NewPopulation(coords ...Coord) (Population, error) {
	cells := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		if !c.Valid() {
			return Population{}, errors.Wrapf(ErrInvalidCoordinate,
				"[NewPopulation] (%d,%d) outside %dx%d board", c.Row, c.Col, Height, Width)
		}
		cells[c] = struct{}{}
	}
	return Population{cells: cells}, nil
}

// MustPopulation is like NewPopulation but panics on an invalid coordinate.
func MustPopulation(coords ...Coord) Population {
	p, err := NewPopulation(coords...)
	if err != nil {
		panic(err)
	}
	return p
}

// fromSet wraps an already validated set without copying it
func fromSet(cells map[Coord]struct{}) Population {
	return Population{cells: cells}
}

// Len returns the number of live cells
func (p Population) Len() int {
	return len(p.cells)
}

// Empty reports whether no cell is alive
func (p Population) Empty() bool {
	return len(p.cells) == 0
}

// Contains reports whether c is alive
func (p Population) Contains(c Coord) bool {
	_, ok := p.cells[c]
	return ok
}

// Coords returns the live cells sorted in row-major order
func (p Population) Coords() []Coord {
	out := make([]Coord, 0, len(p.cells))
	for c := range p.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Equal reports whether both populations hold exactly the same cells
func (p Population) Equal(o Population) bool {
	if len(p.cells) != len(o.cells) {
		return false
	}
	for c := range p.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Translate shifts every cell by (dr, dc), wrapping around the board edges.
func (p Population) Translate(dr, dc int) Population {
	cells := make(map[Coord]struct{}, len(p.cells))
	for c := range p.cells {
		cells[wrap(c.Row+dr, c.Col+dc)] = struct{}{}
	}
	return fromSet(cells)
}

// Bounds returns the bounding box of the live cells; ok is false for an empty population.
func (p Population) Bounds() (minCell, maxCell Coord, ok bool) {
	for c := range p.cells {
		if !ok {
			minCell, maxCell, ok = c, c, true
			continue
		}
		minCell.Row = min(minCell.Row, c.Row)
		minCell.Col = min(minCell.Col, c.Col)
		maxCell.Row = max(maxCell.Row, c.Row)
		maxCell.Col = max(maxCell.Col, c.Col)
	}
	return
}

// String renders the population as a sorted coordinate list
func (p Population) String() string {
	return fmt.Sprint(p.Coords())
}
