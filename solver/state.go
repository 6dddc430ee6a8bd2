package solver

import (
	"github.com/nsolver/npuzzle/board"
	"github.com/nsolver/npuzzle/heuristic"
)

// State is one node of the search tree: a board reached at cost g from the
// start, together with the cached heuristic distance h of that board from
// the target, and a link to the parent State it was expanded from.
//
// A State is immutable after construction. The parent chain forms a tree
// rooted at the start State (parent == nil); it is never mutated, only
// extended, so a child may safely share its parent with any number of
// sibling children.
type State struct {
	G      int
	H      int
	Board  board.Board
	Parent *State
}

// newRoot builds the root State of a search: zero cost, no parent.
func newRoot(start board.Board, h heuristic.Heuristic) *State {
	return &State{
		G:      0,
		H:      h.Distance(start),
		Board:  start,
		Parent: nil,
	}
}

// Children expands s.Board into its legal neighbor boards and wraps each
// as a new State one move further from the start, scored against h.
func (s *State) Children(h heuristic.Heuristic) []*State {
	boards := s.Board.Children()
	children := make([]*State, len(boards))
	for i, b := range boards {
		children[i] = &State{
			G:      s.G + 1,
			H:      h.Distance(b),
			Board:  b,
			Parent: s,
		}
	}

	return children
}

// BuildPath walks the parent chain from s back to the root, recording the
// Move that produced each step, then reverses the result so the first
// element is the first move away from the start. The root contributes no
// Move.
func (s *State) BuildPath() []board.Move {
	var moves []board.Move
	for cur := s; cur.Parent != nil; cur = cur.Parent {
		moves = append(moves, board.NewMove(cur.Parent.Board, cur.Board))
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
