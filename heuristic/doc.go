// Package heuristic provides the A* cost-to-go estimators used by solver.
//
// A Heuristic is built once from the target Board (precomputing a
// positions table: target coordinates per tile value, including the
// blank) and then queried per current Board in O(N²) with no further
// allocation.
//
// Five concrete variants are provided:
//
//	Dijkstra   — always 0 (reduces A* to uniform-cost search). Admissible.
//	MissPlaced — count of tiles not at their target position.
//	Manhattan  — sum of |Δrow| + |Δcol| per tile.
//	Euclidean  — sum of floor(sqrt(Δrow² + Δcol²)) per tile.
//	OutOfRaw   — count of misplaced rows plus count of misplaced columns.
//
// All five variants include every tile, the blank included, in their sum —
// this matches the reference implementation this package was ported from
// and is the convention tests in this package assume throughout. As a
// result only Dijkstra is strictly admissible: each of the other four
// scores 2 on a board one move from the target, since that move displaces
// both the blank and one tile. They trade the optimality guarantee for a
// better-informed search.
package heuristic
