package model

import "testing"

func TestCountsPoolReturnsClearedMaps(t *testing.T) {
	pool := NewCountsPool()
	m := pool.Get()
	m[Coord{1, 1}] = 3
	pool.Put(m)

	if got := pool.Get(); len(got) != 0 {
		t.Fatalf("expected an empty map from the pool, got %v", got)
	}
	pool.Put(nil)
}
