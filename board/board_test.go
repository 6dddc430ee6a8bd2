package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsolver/npuzzle/board"
)

func mustBoard(t *testing.T, data []board.Tile, n int) board.Board {
	t.Helper()
	b, err := board.New(data, n)
	require.NoError(t, err)

	return b
}

func TestNew_Valid(t *testing.T) {
	b, err := board.New([]board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.LineSize)
	assert.Equal(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, b.Data)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []board.Tile
		n    int
		want error
	}{
		{"line too small", []board.Tile{1, 2, 0, 3}, 2, board.ErrLineSize},
		{"wrong tile count", []board.Tile{1, 2, 3, 4, 5, 6, 7, 8}, 3, board.ErrTileCount},
		{"tile out of range", []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, board.ErrTileRange},
		{"duplicate tile", []board.Tile{1, 1, 3, 4, 5, 6, 7, 8, 0}, 3, board.ErrDuplicateTile},
		{"no blank in range", []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 8}, 3, board.ErrDuplicateTile},
		{"two blanks", []board.Tile{0, 2, 3, 4, 5, 6, 7, 0, 1}, 3, board.ErrBlankCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.New(tt.data, tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, board.ErrInvalidBoard))
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestEqual(t *testing.T) {
	a := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	b := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	c := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 0, 8}, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestChildren_DoesNotMutateReceiver(t *testing.T) {
	start := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	snapshot := append([]board.Tile(nil), start.Data...)

	_ = start.Children()

	assert.Equal(t, snapshot, start.Data)
}

func TestChildren_Corners(t *testing.T) {
	topLeft := mustBoard(t, []board.Tile{0, 1, 2, 3, 4, 5, 6, 7, 8}, 3)
	children := topLeft.Children()
	require.Len(t, children, 2)
	for _, c := range children {
		move := board.NewMove(topLeft, c)
		assert.Contains(t, []board.Move{board.Up, board.Left}, move)
	}

	// Note: NewMove labels each swap by the direction the displaced tile
	// slides (see Move), so from the bottom-right corner, where the blank
	// itself can only go up or left, the two legal swaps resolve to Down
	// and Right.
	bottomRight := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	children = bottomRight.Children()
	require.Len(t, children, 2)
	for _, c := range children {
		move := board.NewMove(bottomRight, c)
		assert.Contains(t, []board.Move{board.Down, board.Right}, move)
	}
}

func TestChildren_SecondRowFirstColumn_RegressionForOffByOne(t *testing.T) {
	// Blank at row 1, column 0 (index == line_size): the historical
	// "zero > line_size" guard bug drops the legal swap with the tile in
	// row 0 above it. That child (labeled Down, the blank moving toward a
	// lower index by line_size) must appear, alongside Up and Left; there is
	// no Right-labeled swap from column 0.
	start := mustBoard(t, []board.Tile{1, 2, 3, 0, 4, 5, 6, 7, 8}, 3)
	children := start.Children()
	require.Len(t, children, 3)

	moves := make([]board.Move, 0, len(children))
	for _, c := range children {
		moves = append(moves, board.NewMove(start, c))
	}
	assert.ElementsMatch(t, []board.Move{board.Down, board.Up, board.Left}, moves)
	assert.Contains(t, moves, board.Down)
}

func TestChildren_Edge(t *testing.T) {
	// Blank in the middle of the top edge (not a corner): three children.
	start := mustBoard(t, []board.Tile{1, 0, 3, 4, 2, 5, 6, 7, 8}, 3)
	children := start.Children()
	assert.Len(t, children, 3)
}

func TestChildren_Interior(t *testing.T) {
	start := mustBoard(t, []board.Tile{1, 2, 3, 4, 0, 5, 6, 7, 8}, 3)
	children := start.Children()
	assert.Len(t, children, 4)
}

// Invariant (spec §8.2): for any Board b and any child c of b, c.Children()
// contains b.
func TestChildren_ReversibleInvariant(t *testing.T) {
	start := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	for _, child := range start.Children() {
		grandchildren := child.Children()
		found := false
		for _, gc := range grandchildren {
			if gc.Equal(start) {
				found = true
				break
			}
		}
		assert.True(t, found, "child.Children() must contain the parent")
	}
}

func TestInversions(t *testing.T) {
	solved := mustBoard(t, []board.Tile{1, 2, 3, 4, 5, 6, 7, 8, 0}, 3)
	assert.Equal(t, 0, solved.Inversions())

	oneSwap := mustBoard(t, []board.Tile{2, 1, 3, 4, 5, 6, 7, 8, 0}, 3)
	assert.Equal(t, 1, oneSwap.Inversions())

	// Inversions never count pairs involving the blank, regardless of where
	// it sits.
	// Here: (2,1) plus each of 4, 5, 6, 7, 8 ahead of 3.
	blankFirst := mustBoard(t, []board.Tile{0, 2, 1, 4, 5, 6, 7, 8, 3}, 3)
	assert.Equal(t, 6, blankFirst.Inversions())
}

func TestBlankRow(t *testing.T) {
	b := mustBoard(t, []board.Tile{1, 2, 3, 4, 0, 5, 6, 7, 8}, 3)
	assert.Equal(t, 1, b.BlankRow())
}
