package puzzleio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nsolver/npuzzle/board"
)

// stripComments removes '#'-prefixed comments (whole-line or trailing)
// and drops any line left blank, mirroring the reference parser's
// line-by-line treatment rather than a single regex over the whole file.
func stripComments(content string) []string {
	lines := strings.Split(content, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stripped = append(stripped, line)
	}

	return stripped
}

// Parse reads content in the N-puzzle board format and returns the
// resulting Board. Structural validity (permutation, single blank) is
// enforced by board.New; Parse itself only resolves the surrounding text
// format into a flat tile slice and a line size.
func Parse(content string) (board.Board, error) {
	lines := stripComments(content)
	if len(lines) == 0 {
		return board.Board{}, ErrEmptyInput
	}

	sizeTokens := strings.Fields(lines[0])
	if len(sizeTokens) == 0 {
		return board.Board{}, ErrMissingSize
	}
	lineSize, err := strconv.Atoi(sizeTokens[0])
	if err != nil || lineSize <= 0 {
		return board.Board{}, fmt.Errorf("%w: %q", ErrInvalidSize, sizeTokens[0])
	}

	rows := lines[1:]
	if len(rows) < lineSize {
		return board.Board{}, fmt.Errorf("%w: got %d, want %d", ErrRowCount, len(rows), lineSize)
	}
	rows = rows[:lineSize]

	data := make([]board.Tile, 0, lineSize*lineSize)
	for _, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != lineSize {
			return board.Board{}, fmt.Errorf("%w: row %q has %d tokens, want %d", ErrTokenCount, row, len(tokens), lineSize)
		}
		for _, tok := range tokens {
			v, err := strconv.ParseUint(tok, 10, 16)
			if err != nil {
				return board.Board{}, fmt.Errorf("%w: %q", ErrTileSyntax, tok)
			}
			data = append(data, board.Tile(v))
		}
	}

	b, err := board.New(data, lineSize)
	if err != nil {
		return board.Board{}, err
	}

	return b, nil
}
