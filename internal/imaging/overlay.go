package imaging

import (
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// DefaultOverlayFraction is the share of rows, from the top, that Overlay
// composites.
const DefaultOverlayFraction = 0.8

// Overlay composites three single-channel pictures into r.
//
// r, g and b are expected to hold only red, only green and only blue
// respectively (see AllRed, AllGreen, AllBlue). For the top
// int(0.8*height) rows, every pixel of r takes its green channel from g and
// its blue channel from b; red stays as in r. The remaining bottom rows of r
// are not touched.
//
// All three rasters must have the same dimensions; otherwise an error wrapping
// raster.ErrDimensionMismatch is returned and nothing is modified. On success
// Overlay returns r itself.
func Overlay(r, g, b *raster.Raster) (*raster.Raster, error) {
	return OverlayFraction(r, g, b, DefaultOverlayFraction)
}

// OverlayFraction is Overlay with a configurable fraction of rows in [0, 1].
func OverlayFraction(r, g, b *raster.Raster, fraction float64) (*raster.Raster, error) {
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("overlay fraction %v outside [0,1]", fraction)
	}
	if err := r.SameSize(g); err != nil {
		return nil, fmt.Errorf("overlay green input: %w", err)
	}
	if err := r.SameSize(b); err != nil {
		return nil, fmt.Errorf("overlay blue input: %w", err)
	}

	rows := int(float64(r.Height()) * fraction)
	for row := 0; row < rows; row++ {
		dst, gRow, bRow := r.Row(row), g.Row(row), b.Row(row)
		for col := range dst {
			dst[col].G = gRow[col].G
			dst[col].B = bRow[col].B
		}
	}
	return r, nil
}
