package heuristic

import "github.com/nsolver/npuzzle/board"

// Manhattan estimates cost-to-go as the sum, over every tile (the blank
// included), of the L1 distance between its current position and its
// target position. Because the blank is counted, this is not strictly
// admissible: every move shifts both the blank and one tile by one grid
// step, so a board one move from the target scores 2.
type Manhattan struct {
	positions []position
}

// NewManhattan precomputes target tile positions for target.
func NewManhattan(target board.Board) Manhattan {
	return Manhattan{positions: indexPositions(target)}
}

// Distance sums |Δx| + |Δy| across every tile of current.
func (h Manhattan) Distance(current board.Board) int {
	n := current.LineSize
	cost := 0
	for i, tile := range current.Data {
		target := h.positions[tile]
		curX, curY := i%n, i/n
		cost += abs(target.x-curX) + abs(target.y-curY)
	}

	return cost
}
