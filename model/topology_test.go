package model

import "testing"

func TestNeighborsInterior(t *testing.T) {
	got := Neighbors(Coord{5, 5})
	want := map[Coord]bool{
		{4, 4}: true, {4, 5}: true, {4, 6}: true,
		{5, 4}: true, {5, 6}: true,
		{6, 4}: true, {6, 5}: true, {6, 6}: true,
	}
	seen := make(map[Coord]bool)
	for _, c := range got {
		if !want[c] {
			t.Fatalf("unexpected neighbour %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbours, got %d", len(seen))
	}
}

func TestNeighborsWrapAtCorners(t *testing.T) {
	tests := []struct {
		name string
		cell Coord
		must []Coord
	}{
		{"top left", Coord{0, 0}, []Coord{{Height - 1, Width - 1}, {Height - 1, 0}, {0, Width - 1}, {1, 1}}},
		{"bottom right", Coord{Height - 1, Width - 1}, []Coord{{0, 0}, {0, Width - 1}, {Height - 1, 0}, {Height - 2, Width - 2}}},
		{"top edge", Coord{0, 10}, []Coord{{Height - 1, 9}, {Height - 1, 10}, {Height - 1, 11}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Neighbors(tt.cell)
			distinct := make(map[Coord]bool)
			for _, c := range got {
				if !c.Valid() {
					t.Fatalf("neighbour %v is off the board", c)
				}
				if c == tt.cell {
					t.Fatalf("cell %v listed as its own neighbour", c)
				}
				distinct[c] = true
			}
			if len(distinct) != 8 {
				t.Fatalf("expected 8 distinct neighbours, got %d", len(distinct))
			}
			for _, c := range tt.must {
				if !distinct[c] {
					t.Fatalf("missing wrapped neighbour %v", c)
				}
			}
		})
	}
}

func TestCoordValid(t *testing.T) {
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{Height - 1, Width - 1}, true},
		{Coord{-1, 0}, false},
		{Coord{0, -1}, false},
		{Coord{Height, 0}, false},
		{Coord{0, Width}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Fatalf("%v.Valid() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
