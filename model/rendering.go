package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TerminalRenderer writes the board as plain text
type TerminalRenderer struct{}

// Display renders the population to w
func (r *TerminalRenderer) Display(w io.Writer, p Population) error {
	bw := bufio.NewWriter(w)
	for row := range Height {
		for col := range Width {
			if p.Contains(Coord{Row: row, Col: col}) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
