// Package puzzleio parses the N-puzzle text file format into a board.Board.
//
// Format:
//
//   - Lines beginning with '#', and any text following a '#' elsewhere on
//     a line, are comments and are stripped before parsing.
//   - Blank lines remaining after comment stripping are ignored.
//   - The first remaining token is the puzzle size N (a positive integer).
//   - The next N non-empty lines each hold N whitespace-separated
//     non-negative integers.
//   - The flattened N² integers must form a permutation of {0, …, N²−1};
//     this final structural check is delegated to board.New so the core
//     and its collaborators never disagree on what makes a board valid.
//
// This package is a collaborator of the core, not part of it: the core
// never reads files or parses text (see solver and board package docs).
package puzzleio
