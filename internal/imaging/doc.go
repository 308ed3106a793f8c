// Package imaging provides the picture transforms of the toolkit and the file
// I/O around them.
//
// Every transform operates on a *raster.Raster in place. The operations fall
// into a few families:
//
//   - Recolor: ZeroRed, ZeroGreen, ZeroBlue, AllRed, AllGreen, AllBlue,
//     Grayscale, Negative, ColorShift. Each pixel is rewritten from its own
//     channels only.
//   - Mirror: MirrorVertical, MirrorHorizontal, MirrorDiagonal and the
//     bounded-region MirrorTemple.
//   - Composition: Copy, Compose, Collage and Overlay combine several rasters.
//   - EdgeDetection marks horizontal color changes black on white.
//
// # Coordinate System
//
// Pixels are addressed as (row, col) with (0, 0) at the top-left corner. Row
// increases downward and col increases rightward.
//
// # Error Handling
//
// Operations that can address pixels outside a raster or need rasters of
// matching size validate first and return an error wrapping
// raster.ErrOutOfBounds or raster.ErrDimensionMismatch, leaving their inputs
// unmodified. Copy is the one deliberate exception: a source that runs past
// the destination's bottom or right edge is clipped without error.
//
// # File I/O
//
// Open, Save, EncodePNGBase64 and ImageCache move rasters to and from disk.
// The transforms themselves never perform I/O.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Transforms are not; a caller must
// hold exclusive access to every raster an operation reads or writes.
package imaging
