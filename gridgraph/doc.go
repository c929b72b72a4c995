// Package gridgraph treats a square board of color cells as a 4-connected graph.
//
// What:
//
//   - Grid[C] holds Side×Side cells of any comparable color type C in row-major order.
//   - Coordinates map to linear indices as index = Y*Side + X and back as
//     X = index % Side, Y = index / Side.
//   - Neighbors returns the in-bounds orthogonal cells (N, E, S, W) of a coordinate.
//     Diagonals are never adjacent.
//
// Why:
//
//   - Pixel-art canvases, tile maps and puzzle boards are all "grid of opaque values"
//     where region algorithms only need equality and adjacency.
//
// Complexity:
//
//   - New, FromCells, Cells, Clone: O(Side²) time and memory.
//   - Get, Set, Index, Coordinate, Neighbors: O(1).
//
// Errors:
//
//   - ErrInvalidSide: side must be positive.
//   - ErrCellCount: FromCells received len(cells) ≠ side*side.
//   - ErrIndexOutOfRange: coordinate outside [0, Side) or index outside [0, Side²).
package gridgraph
