package rules

const (
	// StillLive is the neighbour count that keeps a live cell alive without creating new ones.
	StillLive = 2
	// NewBorn is the neighbour count that brings a cell to life, or keeps a live one alive.
	NewBorn = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: neighbors == NewBorn || (alive && neighbors == StillLive)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == NewBorn || (alive && neighbors == StillLive)
}
