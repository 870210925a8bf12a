package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewPopulationRejectsOffBoard(t *testing.T) {
	bad := []Coord{{-1, 0}, {0, -1}, {Height, 0}, {0, Width}}
	for _, c := range bad {
		_, err := NewPopulation(Coord{1, 1}, c)
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("NewPopulation with %v: expected ErrInvalidCoordinate, got %v", c, err)
		}
		if errors.Cause(err) != ErrInvalidCoordinate {
			t.Fatalf("NewPopulation with %v: cause = %v", c, errors.Cause(err))
		}
	}
}

func TestNewPopulationCollapsesDuplicates(t *testing.T) {
	p, err := NewPopulation(Coord{1, 1}, Coord{1, 1}, Coord{2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", p.Len())
	}
	if !p.Contains(Coord{2, 3}) || p.Contains(Coord{3, 2}) {
		t.Fatalf("membership mismatch: %v", p)
	}
}

func TestCoordsSortedRowMajor(t *testing.T) {
	p := MustPopulation(Coord{3, 1}, Coord{0, 9}, Coord{3, 0}, Coord{1, 4})
	got := p.Coords()
	want := []Coord{{0, 9}, {1, 4}, {3, 0}, {3, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Coords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTranslateWrapsAndLeavesOriginalUntouched(t *testing.T) {
	p := MustPopulation(Coord{0, 0}, Coord{Height - 1, Width - 1})
	moved := p.Translate(1, 1)
	want := MustPopulation(Coord{1, 1}, Coord{0, 0})
	if !moved.Equal(want) {
		t.Fatalf("Translate = %v, want %v", moved, want)
	}
	if !p.Contains(Coord{Height - 1, Width - 1}) || p.Len() != 2 {
		t.Fatalf("original population changed: %v", p)
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := MustPopulation().Bounds(); ok {
		t.Fatal("empty population should have no bounds")
	}
	lo, hi, ok := MustPopulation(Coord{4, 9}, Coord{7, 2}, Coord{5, 5}).Bounds()
	if !ok || lo != (Coord{4, 2}) || hi != (Coord{7, 9}) {
		t.Fatalf("Bounds = %v %v %v", lo, hi, ok)
	}
}
