package puzzleio

import "errors"

// Sentinel errors returned while parsing a board file. These are distinct
// from board.ErrInvalidBoard and its siblings, which cover structural
// violations of an already-tokenized board; these cover the surrounding
// text format.
var (
	// ErrEmptyInput indicates the file had no content after comment
	// stripping.
	ErrEmptyInput = errors.New("puzzleio: input is empty after stripping comments")

	// ErrMissingSize indicates the size token could not be read.
	ErrMissingSize = errors.New("puzzleio: missing puzzle size")

	// ErrInvalidSize indicates the size token did not parse as a positive
	// integer.
	ErrInvalidSize = errors.New("puzzleio: puzzle size must be a positive integer")

	// ErrRowCount indicates fewer than N row lines remained after the size
	// line.
	ErrRowCount = errors.New("puzzleio: expected N row lines after the size line")

	// ErrTokenCount indicates a row did not contain exactly N tokens.
	ErrTokenCount = errors.New("puzzleio: row does not contain line_size tokens")

	// ErrTileSyntax indicates a tile token did not parse as a non-negative
	// integer.
	ErrTileSyntax = errors.New("puzzleio: tile token is not a valid non-negative integer")
)
