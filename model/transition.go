package model

import "github.com/sheikhrachel/torus-life/rules"

// NeighborCounts returns, for every cell touched by a live neighbour, how many live
// neighbours it has. Dead cells accumulate counts too, which is how births are found.
// A cell missing from the map has no live neighbours.
func NeighborCounts(p Population) map[Coord]int {
	counts := make(map[Coord]int, len(p.cells)*8)
	accumulate(p, counts)
	return counts
}

func accumulate(p Population, counts map[Coord]int) {
	for c := range p.cells {
		for _, n := range Neighbors(c) {
			counts[n]++
		}
	}
}

// NextGeneration applies the Life rule once and returns a brand-new population.
// Work is proportional to the number of live cells, not the board area.
func NextGeneration(p Population) Population {
	counts := countsPool.Get()
	defer countsPool.Put(counts)

	accumulate(p, counts)

	next := make(map[Coord]struct{}, len(p.cells))
	for c, n := range counts {
		if rules.ApplyConwayRules(n, p.Contains(c)) {
			next[c] = struct{}{}
		}
	}
	return fromSet(next)
}
