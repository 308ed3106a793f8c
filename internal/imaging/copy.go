package imaging

import (
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// Copy overlays all of src onto dst so that src's (0, 0) lands at
// (destRow, destCol).
//
// Rows and columns of both rasters advance in lockstep and copying stops as
// soon as either raster runs out in either dimension. A source that extends
// past the bottom or right edge of dst is clipped silently. Pixels outside the
// copied footprint are untouched.
//
// Negative offsets are rejected with an error wrapping raster.ErrOutOfBounds.
func Copy(dst, src *raster.Raster, destRow, destCol int) error {
	if destRow < 0 || destCol < 0 {
		return fmt.Errorf("%w: copy destination (%d,%d) is negative", raster.ErrOutOfBounds, destRow, destCol)
	}

	for fromRow, toRow := 0, destRow; fromRow < src.Height() && toRow < dst.Height(); fromRow, toRow = fromRow+1, toRow+1 {
		from := src.Row(fromRow)
		to := dst.Row(toRow)
		for fromCol, toCol := 0, destCol; fromCol < len(from) && toCol < len(to); fromCol, toCol = fromCol+1, toCol+1 {
			to[toCol] = from[fromCol]
		}
	}
	return nil
}

// Placement positions one source raster inside a composition.
type Placement struct {
	Source *raster.Raster
	Row    int
	Col    int
}

// Compose copies each placement onto dst in order, so later placements
// overwrite earlier ones where they overlap.
func Compose(dst *raster.Raster, placements ...Placement) error {
	for i, p := range placements {
		if p.Source == nil {
			return fmt.Errorf("placement %d has no source", i)
		}
		if err := Copy(dst, p.Source, p.Row, p.Col); err != nil {
			return fmt.Errorf("placement %d: %w", i, err)
		}
	}
	return nil
}

// DefaultCollageRows are the row offsets of the six collage strips.
var DefaultCollageRows = []int{0, 100, 200, 300, 400, 500}

// Collage builds the classic six-strip collage on dst and mirrors it.
//
// Strips alternate first, second, first, second-without-blue, first, second
// down column 0 at the row offsets in rows (DefaultCollageRows when nil).
// Offsets beyond the sixth are ignored. The blue-free strip is made from a
// copy of second; second itself is not modified. Finally dst is mirrored
// left-to-right with MirrorVertical.
//
// dst must be tall enough for the strips the caller wants to see; strips that
// fall past the bottom edge are clipped like any other Copy.
func Collage(dst, first, second *raster.Raster, rows []int) error {
	if rows == nil {
		rows = DefaultCollageRows
	}

	noBlue := second.Clone()
	ZeroBlue(noBlue)

	sources := []*raster.Raster{first, second, first, noBlue, first, second}
	placements := make([]Placement, 0, len(sources))
	for i, row := range rows {
		if i >= len(sources) {
			break
		}
		placements = append(placements, Placement{Source: sources[i], Row: row})
	}

	if err := Compose(dst, placements...); err != nil {
		return fmt.Errorf("failed to compose collage: %w", err)
	}

	MirrorVertical(dst)
	return nil
}

// CollageSize returns the smallest height and width that hold every strip of
// a collage of first and second at the given row offsets.
func CollageSize(first, second *raster.Raster, rows []int) (height, width int) {
	if rows == nil {
		rows = DefaultCollageRows
	}
	sources := []*raster.Raster{first, second, first, second, first, second}
	for i, row := range rows {
		if i >= len(sources) {
			break
		}
		height = max(height, row+sources[i].Height())
		width = max(width, sources[i].Width())
	}
	return height, width
}
