package model

import "sync"

// countsPool recycles neighbour-count maps between generations
var countsPool = NewCountsPool()

// CountsPool keeps neighbour-count maps around for reuse
type CountsPool struct {
	pool sync.Pool
}

func NewCountsPool() *CountsPool {
	return &CountsPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Coord]int)
			},
		},
	}
}

// Get retrieves an empty count map from the pool
func (p *CountsPool) Get() map[Coord]int {
	return p.pool.Get().(map[Coord]int)
}

// Put returns a count map to the pool, clearing its state
func (p *CountsPool) Put(counts map[Coord]int) {
	if counts == nil {
		return
	}
	clear(counts)
	p.pool.Put(counts)
}
