package model

import (
	"encoding/binary"
	"strings"
)

// Canonical translates p so that its minimum row and minimum column are both zero.
// Two populations that differ only by a translation share a canonical form.
// Patterns that have wrapped through a board edge are not unwrapped first.
func Canonical(p Population) Population {
	if p.Empty() {
		return p
	}
	minCell, _, _ := p.Bounds()
	if minCell.Row == 0 && minCell.Col == 0 {
		return p
	}
	cells := make(map[Coord]struct{}, len(p.cells))
	for c := range p.cells {
		cells[Coord{Row: c.Row - minCell.Row, Col: c.Col - minCell.Col}] = struct{}{}
	}
	return fromSet(cells)
}

// Key returns an exact, order-independent encoding of p, suitable as a map key
func Key(p Population) string {
	var (
		sb  strings.Builder
		buf [4]byte
	)
	sb.Grow(p.Len() * len(buf))
	for _, c := range p.Coords() {
		binary.BigEndian.PutUint16(buf[0:2], uint16(c.Row))
		binary.BigEndian.PutUint16(buf[2:4], uint16(c.Col))
		sb.Write(buf[:])
	}
	return sb.String()
}
