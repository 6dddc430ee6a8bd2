package heuristic

import "github.com/nsolver/npuzzle/board"

// Heuristic estimates the number of moves remaining from a current Board to
// the target Board a concrete value was built from. Distance must return a
// non-negative integer. solver's A* search is guaranteed an optimal path
// only when Distance never overestimates the true optimal cost-to-goal; of
// the variants in this package only Dijkstra guarantees that (see the
// package doc).
type Heuristic interface {
	Distance(current board.Board) int
}

// position is a tile's (x, y) = (column, row) coordinate within a Board of
// a given LineSize.
type position struct {
	x, y int
}

// indexPositions builds positions[v] = the (column, row) of tile value v in
// target. Every concrete heuristic in this package precomputes this table
// exactly once, in its constructor, and reads it in O(1) per tile inside
// Distance.
func indexPositions(target board.Board) []position {
	n := target.LineSize
	positions := make([]position, len(target.Data))
	for i, tile := range target.Data {
		positions[tile] = position{x: i % n, y: i / n}
	}

	return positions
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
