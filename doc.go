// Package npuzzle is a from-scratch, zero-cgo A* solver for the sliding
// N-puzzle (the classic "15-puzzle" generalized to any N×N board).
//
// 🧩 What is npuzzle?
//
//	A small, single-threaded solver library that brings together:
//
//	  • board     — immutable N×N tile configurations and their neighbors
//	  • heuristic — five pluggable cost-to-go estimators (capability interface)
//	  • solver    — the A* search loop: solvability oracle, priority-ordered
//	                frontier, closed set, path reconstruction, and the
//	                memory/time complexity counters a caller asks for
//
// ✨ Why choose npuzzle?
//
//   - Correct first — the solvability oracle rejects unsolvable instances
//     before a single node is expanded; admissible heuristics are proven
//     to return an optimal move sequence, not merely "a" sequence.
//   - Pluggable — heuristics satisfy one small interface; swapping
//     Manhattan for Euclidean never touches the search loop.
//   - Pure Go — no cgo, no GUI, no persistence; the entire search runs to
//     completion inside one synchronous call.
//
// Under the hood, everything is organized under three subpackages:
//
//	board/     — Board, Tile, Move: configuration, children, inversions
//	heuristic/ — the Heuristic capability and its five concrete variants
//	solver/    — State, the priority queue, Solver and its A* main loop
//
// puzzleio/ and cmd/npuzzle/ sit outside the core: they read the on-disk
// board format and drive the solver from the command line. Neither is
// required to use the core as a library.
//
// Quick ASCII example, solved by moving the blank left twice:
//
//	1 2 3        1 2 3
//	4 5 6   -->  4 5 6
//	7 8 _        _ 7 8
//
//	go get github.com/nsolver/npuzzle
package npuzzle
