package model

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Block returns the 2x2 still life anchored at the origin
func Block() Population {
	return MustPopulation(Coord{0, 0}, Coord{0, 1}, Coord{1, 0}, Coord{1, 1})
}

// Blinker returns the horizontal period-2 oscillator anchored at the origin
func Blinker() Population {
	return MustPopulation(Coord{0, 0}, Coord{0, 1}, Coord{0, 2})
}

// Glider returns a glider heading towards the bottom right
func Glider() Population {
	return MustPopulation(
		Coord{0, 1},
		Coord{1, 2},
		Coord{2, 0}, Coord{2, 1}, Coord{2, 2},
	)
}

// Named looks up a built-in pattern by name
func Named(name string) (Population, error) {
	switch strings.ToLower(name) {
	case "block":
		return Block(), nil
	case "blinker":
		return Blinker(), nil
	case "glider":
		return Glider(), nil
	}
	return Population{}, errors.Errorf("[Named] unknown pattern: %q", name)
}

// Place offsets pattern by (row, col) without wrapping.
// Any cell pushed off the board is an ErrInvalidCoordinate.
func Place(pattern Population, row, col int) (Population, error) {
	coords := pattern.Coords()
	for i := range coords {
		coords[i].Row += row
		coords[i].Col += col
	}
	p, err := NewPopulation(coords...)
	if err != nil {
		return Population{}, errors.Wrapf(err, "[Place] pattern does not fit at (%d,%d)", row, col)
	}
	return p, nil
}

// Center moves pattern so that its bounding box sits in the middle of the board
func Center(pattern Population) (Population, error) {
	canonical := Canonical(pattern)
	_, maxCell, ok := canonical.Bounds()
	if !ok {
		return canonical, nil
	}
	return Place(canonical, (Height-maxCell.Row-1)/2, (Width-maxCell.Col-1)/2)
}

// Combine returns the union of the given populations
func Combine(ps ...Population) Population {
	cells := make(map[Coord]struct{})
	for _, p := range ps {
		for c := range p.cells {
			cells[c] = struct{}{}
		}
	}
	return fromSet(cells)
}

// Random fills the board so that each cell is alive with the given probability
func Random(rng *rand.Rand, density float64) Population {
	cells := make(map[Coord]struct{})
	for row := range Height {
		for col := range Width {
			if rng.Float64() < density {
				cells[Coord{Row: row, Col: col}] = struct{}{}
			}
		}
	}
	return fromSet(cells)
}

// Seeded scatters a couple of gliders and blinkers over the board and adds random life on top.
func Seeded(rng *rand.Rand, density float64) (Population, error) {
	placements := []struct {
		pattern  Population
		row, col int
	}{
		{Glider(), 5, 5},
		{Glider(), 5, Width - 8},
		{Blinker(), Height / 4, Width / 4},
		{Blinker(), 3 * Height / 4, 3 * Width / 4},
	}

	parts := make([]Population, 0, len(placements)+1)
	for _, pl := range placements {
		p, err := Place(pl.pattern, pl.row, pl.col)
		if err != nil {
			return Population{}, errors.Wrap(err, "[Seeded] failed to place pattern")
		}
		parts = append(parts, p)
	}
	parts = append(parts, Random(rng, density))
	return Combine(parts...), nil
}

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ParsePlaintext reads a pattern drawn with 'O' or '*' for live cells and '.' or ' ' for dead ones.
// Lines starting with '!' are comments. Row 0 is the first non-comment line.
func ParsePlaintext(r io.Reader) (Population, error) {
	var (
		coords  []Coord
		row     int
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range []rune(line) {
			switch ch {
			case 'O', 'o', '*':
				coords = append(coords, Coord{Row: row, Col: col})
			case '.', ' ':
			default:
				return Population{}, errors.Errorf("[ParsePlaintext] unexpected %q at line %d", ch, row+1)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Population{}, errors.Wrap(err, "[ParsePlaintext] failed to read pattern")
	}
	p, err := NewPopulation(coords...)
	if err != nil {
		return Population{}, errors.Wrap(err, "[ParsePlaintext] pattern larger than board")
	}
	return p, nil
}
