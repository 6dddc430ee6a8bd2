package heuristic

import "github.com/nsolver/npuzzle/board"

// MissPlaced estimates cost-to-go as the count of tiles (the blank
// included) that are not already at their target position. Because the
// blank is counted, this is not strictly admissible: one move can put both
// the blank and a tile in place, so a board one move from the target
// scores 2.
type MissPlaced struct {
	positions []position
}

// NewMissPlaced precomputes target tile positions for target.
func NewMissPlaced(target board.Board) MissPlaced {
	return MissPlaced{positions: indexPositions(target)}
}

// Distance counts tiles of current not at their target position.
func (h MissPlaced) Distance(current board.Board) int {
	n := current.LineSize
	cost := 0
	for i, tile := range current.Data {
		target := h.positions[tile]
		curX, curY := i%n, i/n
		if target.x != curX || target.y != curY {
			cost++
		}
	}

	return cost
}
