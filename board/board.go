package board

import "fmt"

// Tile is a single sliding-puzzle cell value. Tile 0 is the blank.
type Tile uint16

// Blank is the tile value representing the empty cell.
const Blank Tile = 0

// Board is an immutable N×N sliding-puzzle configuration: Data holds N²
// Tiles in row-major order, LineSize is N. Two Boards are equal iff their
// LineSize and Data sequences match; Key gives a comparable representation
// suitable for use as a map key (the closed-set lookup in solver relies on
// this).
//
// A Board is built once by New and never mutated afterwards: Children
// always returns fresh Boards.
type Board struct {
	Data     []Tile
	LineSize int
}

// New validates data against the invariants of an N×N sliding puzzle and
// returns the corresponding Board.
//
// Validation order (first failure wins):
//  1. LineSize >= 3                               -> ErrLineSize
//  2. len(data) == LineSize*LineSize              -> ErrTileCount
//  3. every tile in {0, ..., LineSize*LineSize-1} -> ErrTileRange
//  4. no non-blank tile value repeated            -> ErrDuplicateTile
//  5. exactly one tile equals Blank                -> ErrBlankCount
//
// All failures wrap ErrInvalidBoard via %w so callers may test either the
// umbrella sentinel or the specific cause.
func New(data []Tile, lineSize int) (Board, error) {
	if lineSize < 3 {
		return Board{}, fmt.Errorf("%w: %w: got %d", ErrInvalidBoard, ErrLineSize, lineSize)
	}

	want := lineSize * lineSize
	if len(data) != want {
		return Board{}, fmt.Errorf("%w: %w: want %d tiles, got %d", ErrInvalidBoard, ErrTileCount, want, len(data))
	}

	seen := make([]bool, want)
	blanks := 0
	for _, t := range data {
		if int(t) < 0 || int(t) >= want {
			return Board{}, fmt.Errorf("%w: %w: tile %d", ErrInvalidBoard, ErrTileRange, t)
		}
		if t == Blank {
			blanks++
			continue
		}
		if seen[t] {
			return Board{}, fmt.Errorf("%w: %w: tile %d", ErrInvalidBoard, ErrDuplicateTile, t)
		}
		seen[t] = true
	}
	if blanks != 1 {
		return Board{}, fmt.Errorf("%w: %w: found %d", ErrInvalidBoard, ErrBlankCount, blanks)
	}

	out := make([]Tile, want)
	copy(out, data)

	return Board{Data: out, LineSize: lineSize}, nil
}

// Equal reports structural equality: same LineSize and same Data sequence.
func (b Board) Equal(other Board) bool {
	if b.LineSize != other.LineSize || len(b.Data) != len(other.Data) {
		return false
	}
	for i, t := range b.Data {
		if other.Data[i] != t {
			return false
		}
	}

	return true
}

// Key returns a comparable representation of b suitable for use as a map
// key (the closed-set lookup in solver keys on configuration, not on
// *Board). Two Boards with equal Data/LineSize always produce equal keys.
func (b Board) Key() string {
	buf := make([]byte, len(b.Data)*2)
	for i, t := range b.Data {
		buf[i*2] = byte(t)
		buf[i*2+1] = byte(t >> 8)
	}

	return string(buf)
}

// blankIndex returns the row-major index of the blank tile. Callers that
// have already validated the Board (via New, or Children on a New'd Board)
// are guaranteed exactly one blank exists.
func (b Board) blankIndex() int {
	for i, t := range b.Data {
		if t == Blank {
			return i
		}
	}

	// Unreachable for any Board constructed via New: validation guarantees
	// exactly one blank. A hand-built zero-value Board would get here, which
	// is a programmer error, not a runtime condition to recover from.
	panic("board: no blank tile found")
}

// Inversions counts pairs (i, j), i < j, where Data[i] > Data[j], ignoring
// any pair involving the blank. Used by the solvability oracle.
//
// O(N⁴) naive double loop; see the package doc for the accepted
// O(N² log N) alternative.
func (b Board) Inversions() int {
	count := 0
	for i := 0; i < len(b.Data)-1; i++ {
		if b.Data[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b.Data); j++ {
			if b.Data[j] == Blank {
				continue
			}
			if b.Data[i] > b.Data[j] {
				count++
			}
		}
	}

	return count
}

// BlankRow returns the 0-based row index of the blank, counted from the
// top. Used by the solvability oracle for even-sized boards.
func (b Board) BlankRow() int {
	return b.blankIndex() / b.LineSize
}

// Children enumerates up to four neighbor Boards produced by swapping the
// blank with an orthogonal neighbor. Order is deterministic: Up, Down,
// Left, Right, where the direction names the way the blank moves. Boundary
// cases produce fewer children; the receiver is never mutated.
//
// The guard for "blank can move up" is zero >= LineSize (blank is not in
// the top row), never zero > LineSize — the latter silently drops the
// legal upward move whenever the blank sits in column 0 of row 1.
func (b Board) Children() []Board {
	children := make([]Board, 0, 4)
	zero := b.blankIndex()
	n := b.LineSize

	if zero >= n {
		children = append(children, b.swapped(zero, zero-n))
	}
	if zero < n*(n-1) {
		children = append(children, b.swapped(zero, zero+n))
	}
	if zero%n > 0 {
		children = append(children, b.swapped(zero, zero-1))
	}
	if zero%n < n-1 {
		children = append(children, b.swapped(zero, zero+1))
	}

	return children
}

// swapped returns a fresh Board with Data[i] and Data[j] exchanged, leaving
// the receiver untouched.
func (b Board) swapped(i, j int) Board {
	data := make([]Tile, len(b.Data))
	copy(data, b.Data)
	data[i], data[j] = data[j], data[i]

	return Board{Data: data, LineSize: b.LineSize}
}

// String renders the Board as LineSize rows of whitespace-separated tiles,
// the blank printed as "_". Useful for test failure messages and CLI
// diagnostics; not part of the on-disk format (see puzzleio).
func (b Board) String() string {
	out := make([]byte, 0, len(b.Data)*3)
	for i, t := range b.Data {
		if i > 0 && i%b.LineSize == 0 {
			out = append(out, '\n')
		} else if i > 0 {
			out = append(out, ' ')
		}
		if t == Blank {
			out = append(out, '_')
		} else {
			out = append(out, []byte(fmt.Sprintf("%d", t))...)
		}
	}

	return string(out)
}
