package heuristic

import (
	"math"

	"github.com/nsolver/npuzzle/board"
)

// Euclidean estimates cost-to-go as the sum, over every tile (the blank
// included), of floor(sqrt(Δx² + Δy²)) between its current and target
// position. Flooring to an integer (rather than taking the ceiling, or
// leaving it fractional) makes this estimate optimistic enough to
// occasionally underestimate by less than Manhattan does on diagonal
// offsets, but it is not strictly admissible in the general case — a
// deliberate speed/optimality trade-off documented in solver's package
// doc. Of the variants in this package only Dijkstra is strictly
// admissible (see the package doc).
type Euclidean struct {
	positions []position
}

// NewEuclidean precomputes target tile positions for target.
func NewEuclidean(target board.Board) Euclidean {
	return Euclidean{positions: indexPositions(target)}
}

// Distance sums floor(sqrt(Δx² + Δy²)) across every tile of current.
func (h Euclidean) Distance(current board.Board) int {
	n := current.LineSize
	cost := 0
	for i, tile := range current.Data {
		target := h.positions[tile]
		curX, curY := i%n, i/n
		dx := float64(target.x - curX)
		dy := float64(target.y - curY)
		cost += int(math.Sqrt(dx*dx + dy*dy))
	}

	return cost
}
