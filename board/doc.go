// Package board defines the immutable N×N sliding-puzzle configuration,
// its neighbor generator, and the Move that labels an edge between two
// configurations.
//
// A Board holds N² Tiles in row-major order, exactly one of which is the
// blank (Tile 0). Boards are built once and never mutated afterwards;
// Children produces fresh Boards, leaving the receiver untouched.
//
// Complexity:
//
//   - Children: O(N²) per call (a scan for the blank, then at most 4
//     single-swap copies of N² tiles).
//   - Inversions: O(N⁴) naive double loop over data; acceptable for the
//     small boards (3×3, 4×4, …) this solver targets. An O(N² log N)
//     merge-sort inversion counter is a drop-in optimization that does
//     not change the contract.
//
// Errors (sentinel, all wrap ErrInvalidBoard):
//
//   - ErrTileCount  — len(data) != line*line.
//   - ErrLineSize   — line < 3.
//   - ErrTileRange  — a tile value falls outside {0, …, N²-1}.
//   - ErrDuplicateTile — a tile value appears more than once.
//   - ErrBlankCount — data does not contain exactly one Tile 0.
package board
