package imaging

import (
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// MirrorVertical reflects the left half of r onto the right half about the
// vertical center line.
//
// For every row and each column c in [0, width/2), the pixel at c is copied to
// width-1-c. With an odd width the center column is left as is. Applying the
// mirror twice gives the same result as applying it once.
func MirrorVertical(r *raster.Raster) {
	width := r.Width()
	for row := 0; row < r.Height(); row++ {
		pixels := r.Row(row)
		for col := 0; col < width/2; col++ {
			pixels[width-1-col] = pixels[col]
		}
	}
}

// MirrorHorizontal reflects the top half of r onto the bottom half about the
// horizontal center line. With an odd height the center row is left as is.
func MirrorHorizontal(r *raster.Raster) {
	height := r.Height()
	for row := 0; row < height/2; row++ {
		copy(r.Row(height-1-row), r.Row(row))
	}
}

// MirrorDiagonal reflects r across its main diagonal, scaled by the aspect
// ratio slope = width/height.
//
// # Algorithm
//
// A running threshold start begins at -slope and grows by slope at every row
// (by repeated addition, not row*slope). For row r with s = int(start), each
// column c >= s is "below the diagonal". With distance = c - s, the current
// value of (r, c) is written to:
//
//  1. (min(int(r + distance/slope), height-1), s)
//  2. (min(int(r - 1 + distance/slope), height-1), s) when r > 0
//  3. the same row as (2) at column s-1 when start >= 1
//
// Reads see earlier writes. For non-square rasters this produces a stepped
// shear rather than a geometric 45 degree flip.
//
// Row indices are clamped to height-1. Column indices stay in range because
// s < width for every row and s-1 is only used when start >= 1. An empty
// raster is left unchanged.
func MirrorDiagonal(r *raster.Raster) {
	height, width := r.Height(), r.Width()
	if height == 0 || width == 0 {
		return
	}

	slope := float64(width) / float64(height)
	start := -slope
	for row := 0; row < height; row++ {
		start += slope
		s := int(start)
		for col := s; col < width; col++ {
			p := r.PixelAt(row, col)
			reach := float64(col-s) / slope

			r.SetPixel(min(int(float64(row)+reach), height-1), s, p)
			if row > 0 {
				r.SetPixel(min(int(float64(row-1)+reach), height-1), s, p)
			}
			if start >= 1 {
				r.SetPixel(min(int(float64(row-1)+reach), height-1), s-1, p)
			}
		}
	}
}

// TempleRegion describes the bounded area mirrored by MirrorTemple.
//
// Rows [RowStart, RowEnd) and columns [ColStart, MirrorPoint) are reflected
// about the vertical axis at column MirrorPoint.
type TempleRegion struct {
	MirrorPoint int `json:"mirror_point" yaml:"mirrorPoint"`
	RowStart    int `json:"row_start" yaml:"rowStart"`
	RowEnd      int `json:"row_end" yaml:"rowEnd"`
	ColStart    int `json:"col_start" yaml:"colStart"`
}

// DefaultTempleRegion is the region that repairs the broken pediment of the
// classic temple.jpg exercise picture.
var DefaultTempleRegion = TempleRegion{
	MirrorPoint: 276,
	RowStart:    27,
	RowEnd:      97,
	ColStart:    13,
}

// Validate checks that the region fits inside a height x width raster.
//
// The widest write lands at column 2*MirrorPoint - ColStart, so that column
// must exist. An inverted or negative region is also rejected.
func (t TempleRegion) Validate(height, width int) error {
	if t.RowStart < 0 || t.RowStart > t.RowEnd || t.RowEnd > height {
		return fmt.Errorf("%w: temple rows [%d,%d) outside raster height %d",
			raster.ErrOutOfBounds, t.RowStart, t.RowEnd, height)
	}
	if t.ColStart < 0 || t.ColStart > t.MirrorPoint {
		return fmt.Errorf("%w: temple columns [%d,%d) invalid",
			raster.ErrOutOfBounds, t.ColStart, t.MirrorPoint)
	}
	if t.ColStart < t.MirrorPoint {
		if far := 2*t.MirrorPoint - t.ColStart; far >= width {
			return fmt.Errorf("%w: temple mirror writes column %d, raster width %d",
				raster.ErrOutOfBounds, far, width)
		}
	}
	return nil
}

// MirrorTemple mirrors the sub-region of r described by region about the
// vertical axis at region.MirrorPoint: each (row, col) in the region is copied
// to (row, 2*MirrorPoint - col).
//
// The region is validated before any pixel is written. If it does not fit,
// MirrorTemple returns an error wrapping raster.ErrOutOfBounds and r is left
// unchanged.
func MirrorTemple(r *raster.Raster, region TempleRegion) error {
	if err := region.Validate(r.Height(), r.Width()); err != nil {
		return err
	}

	for row := region.RowStart; row < region.RowEnd; row++ {
		pixels := r.Row(row)
		for col := region.ColStart; col < region.MirrorPoint; col++ {
			pixels[2*region.MirrorPoint-col] = pixels[col]
		}
	}
	return nil
}
