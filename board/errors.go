package board

import "errors"

// Sentinel errors returned by board construction.
var (
	// ErrInvalidBoard is the umbrella sentinel all construction failures wrap.
	// Callers that only care "was this board malformed" can test with
	// errors.Is(err, board.ErrInvalidBoard); callers that need the precise
	// cause can test against the more specific sentinels below.
	ErrInvalidBoard = errors.New("board: invalid board")

	// ErrLineSize indicates line_size < 3.
	ErrLineSize = errors.New("board: line size must be at least 3")

	// ErrTileCount indicates len(data) != line_size*line_size.
	ErrTileCount = errors.New("board: tile count does not match line size")

	// ErrTileRange indicates a tile value outside {0, ..., line_size^2 - 1}.
	ErrTileRange = errors.New("board: tile value out of range")

	// ErrDuplicateTile indicates the same tile value appears more than once.
	ErrDuplicateTile = errors.New("board: duplicate tile value")

	// ErrBlankCount indicates data does not contain exactly one blank (tile 0).
	ErrBlankCount = errors.New("board: exactly one blank tile required")
)
