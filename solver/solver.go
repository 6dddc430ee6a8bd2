// Package solver implements the A* search that drives an N-puzzle from a
// start configuration to a target configuration.
//
// The search is single-threaded and synchronous: Solve runs to completion
// (or to a configured node budget) within one call and never blocks on
// I/O. Given an admissible Heuristic, the returned move sequence is
// optimal; non-admissible heuristics (in package heuristic, every variant
// except Dijkstra, since they count the blank) trade that guarantee for
// speed.
//
// Complexity:
//
//   - Time:  O(b^d) in the worst case, where b is the branching factor
//     (≤ 4) and d the solution depth; bounded in practice by the
//     heuristic's informedness and an optional NodeBudget.
//   - Space: O(frontier size), dominated by the open set and the closed
//     map keyed by Board.Key().
//
// Errors (sentinel): ErrUnmatchingSizes, ErrUnsolvable, ErrSearchExhausted,
// ErrBudgetExceeded.
package solver

import (
	"container/heap"
	"fmt"

	"github.com/nsolver/npuzzle/board"
	"github.com/nsolver/npuzzle/heuristic"
)

// Result carries the complexity counters and move sequence produced by a
// successful Solve call.
//
// MaxFrontier  – the largest size the open set reached during the search.
// Expansions   – the number of child States generated and pushed.
// Moves        – the moves (labelled as board.Move describes) from start to
//                target, in order.
type Result struct {
	MaxFrontier int
	Expansions  int
	Moves       []board.Move
}

// Solver holds a validated (start, target) pair ready to be searched with
// any Heuristic built against target.
type Solver struct {
	start  board.Board
	target board.Board
}

// New validates start and target and returns a Solver bound to them.
//
// Preconditions checked, in order:
//  1. start.LineSize == target.LineSize, else ErrUnmatchingSizes.
//  2. The inversion-parity oracle accepts the pair, else ErrUnsolvable.
//
// Per-board structural validity (duplicate tiles, tile range, exactly one
// blank) is the caller's responsibility via board.New; Solver only checks
// size-match and solvability, as the core never re-validates what its
// collaborator has already guaranteed.
func New(start, target board.Board) (*Solver, error) {
	if start.LineSize != target.LineSize || len(start.Data) != len(target.Data) {
		return nil, fmt.Errorf("%w: start=%d target=%d", ErrUnmatchingSizes, start.LineSize, target.LineSize)
	}

	if !isSolvable(start, target) {
		return nil, ErrUnsolvable
	}

	return &Solver{start: start, target: target}, nil
}

// isSolvable applies the inversion-parity oracle: for odd line sizes the
// inversion counts of start and target must share parity; for even line
// sizes, inversion count plus the blank's top-indexed row must share
// parity between start and target.
func isSolvable(start, target board.Board) bool {
	startInv := start.Inversions()
	targetInv := target.Inversions()

	if start.LineSize%2 != 0 {
		return startInv%2 == targetInv%2
	}

	startParity := (startInv + start.BlankRow()) % 2
	targetParity := (targetInv + target.BlankRow()) % 2

	return startParity == targetParity
}

// Solve runs A* from s.start to s.target scored by h, applying any
// supplied Options (node budget, heuristic weight). h must have been
// built against s.target.
func (s *Solver) Solve(h heuristic.Heuristic, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	open := make(statePQ, 0, 64)
	heap.Init(&open)

	root := newRoot(s.start, h)
	heap.Push(&open, &stateItem{state: root, f: float64(root.G) + cfg.Weight*float64(root.H)})

	closed := make(map[string]int)
	pushed := 1 // the root counts against the node budget too.

	var maxFrontier, expansions int

	for open.Len() > 0 {
		item := heap.Pop(&open).(*stateItem)
		cur := item.state

		if cur.Board.Equal(s.target) {
			return Result{
				MaxFrontier: maxFrontier,
				Expansions:  expansions,
				Moves:       cur.BuildPath(),
			}, nil
		}

		for _, child := range cur.Children(h) {
			key := child.Board.Key()
			bestG, seen := closed[key]
			if seen && bestG <= child.G {
				continue
			}

			if pushed >= cfg.NodeBudget {
				return Result{MaxFrontier: maxFrontier, Expansions: expansions}, ErrBudgetExceeded
			}

			heap.Push(&open, &stateItem{state: child, f: float64(child.G) + cfg.Weight*float64(child.H)})
			pushed++
			expansions++
		}

		if open.Len() > maxFrontier {
			maxFrontier = open.Len()
		}

		closed[cur.Board.Key()] = cur.G
	}

	return Result{MaxFrontier: maxFrontier, Expansions: expansions}, ErrSearchExhausted
}
