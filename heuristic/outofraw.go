package heuristic

import "github.com/nsolver/npuzzle/board"

// OutOfRaw estimates cost-to-go as the count of tiles (the blank included)
// not in their target row, plus the count of tiles not in their target
// column, counted independently. Because the blank is counted, this is not
// strictly admissible: every move shifts both the blank and one tile along
// the same axis, so a board one move from the target scores 2.
type OutOfRaw struct {
	positions []position
}

// NewOutOfRaw precomputes target tile positions for target.
func NewOutOfRaw(target board.Board) OutOfRaw {
	return OutOfRaw{positions: indexPositions(target)}
}

// Distance counts row-mismatches plus column-mismatches across every tile
// of current.
func (h OutOfRaw) Distance(current board.Board) int {
	n := current.LineSize
	cost := 0
	for i, tile := range current.Data {
		target := h.positions[tile]
		curX, curY := i%n, i/n
		if curY != target.y {
			cost++
		}
		if curX != target.x {
			cost++
		}
	}

	return cost
}
