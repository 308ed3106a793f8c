// Package raster provides the in-memory pixel grid that every picture
// transform reads and writes.
//
// A Raster owns a single flat slice of Pixel values stored row-major, so the
// grid is rectangular by construction. Pixels are addressed by (row, col) with
// (0, 0) at the top-left corner:
//   - row: vertical position, 0 <= row < Height()
//   - col: horizontal position, 0 <= col < Width()
//
// Note the argument order: raster methods take (row, col), while the
// image.Image methods a Raster also implements take (x, y) = (col, row).
//
// # Pixels
//
// Pixel is a value type with three 8-bit channels. The clamping setters
// (SetRed, SetGreen, SetBlue, SetColor) accept any int and pin it to [0, 255].
// Ref returns a pointer into the grid for in-place per-channel edits.
//
// # Errors
//
// Cross-raster and bounded operations report precondition failures through
// the sentinel errors ErrDimensionMismatch and ErrOutOfBounds. Callers should
// test for them with errors.Is; returned errors carry the offending
// coordinates or dimensions as context.
//
// # Thread Safety
//
// A Raster is not safe for concurrent mutation. Callers that share a raster
// between goroutines must hold exclusive access for the duration of any
// operation that reads or writes it.
package raster
