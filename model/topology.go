package model

const (
	// Width is the number of columns on the board.
	Width = 75
	// Height is the number of rows on the board.
	Height = 50
)

// Coord addresses a single cell by row and column
type Coord struct {
	Row int
	Col int
}

// Valid reports whether the coordinate lies on the board
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Height && c.Col >= 0 && c.Col < Width
}

// wrap maps any coordinate back onto the torus
func wrap(row, col int) Coord {
	return Coord{
		Row: ((row % Height) + Height) % Height,
		Col: ((col % Width) + Width) % Width,
	}
}

// Neighbors returns the 8 toroidal neighbours of c.
// Edge and corner cells wrap to the opposite side, so every cell has 8 distinct neighbours.
func Neighbors(c Coord) [8]Coord {
	var (
		out [8]Coord
		n   int
	)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			out[n] = Coord{
				Row: (c.Row + di + Height) % Height,
				Col: (c.Col + dj + Width) % Width,
			}
			n++
		}
	}
	return out
}
