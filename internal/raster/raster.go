package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// Raster is a height x width grid of pixels stored row-major in one slice.
//
// The zero value is an empty 0x0 raster. Use New or FromImage to create a
// raster with pixels.
type Raster struct {
	height int
	width  int
	pix    []Pixel
}

// New creates a height x width raster with every pixel black.
//
// Negative dimensions are treated as zero.
func New(height, width int) *Raster {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Raster{
		height: height,
		width:  width,
		pix:    make([]Pixel, height*width),
	}
}

// NewFilled creates a height x width raster with every pixel set to p.
func NewFilled(height, width int, p Pixel) *Raster {
	r := New(height, width)
	r.Fill(p)
	return r
}

// FromImage copies any image.Image into a new raster. Alpha is discarded;
// the image's bounds origin maps to (0, 0).
func FromImage(img image.Image) *Raster {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()

	r := New(b.Dy(), b.Dx())
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			c := rgba.RGBAAt(b.Min.X+col, b.Min.Y+row)
			r.pix[r.index(row, col)] = Pixel{R: c.R, G: c.G, B: c.B}
		}
	}
	return r
}

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// InBounds reports whether (row, col) addresses a pixel of r.
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.height && col >= 0 && col < r.width
}

// PixelAt returns the pixel at (row, col). It panics if the coordinates are
// outside the raster; use InBounds or Check to validate untrusted input.
func (r *Raster) PixelAt(row, col int) Pixel {
	return r.pix[r.mustIndex(row, col)]
}

// SetPixel stores p at (row, col). It panics on out-of-range coordinates.
func (r *Raster) SetPixel(row, col int, p Pixel) {
	r.pix[r.mustIndex(row, col)] = p
}

// Ref returns a pointer to the pixel at (row, col) for in-place edits.
// The pointer is valid for the lifetime of r.
func (r *Raster) Ref(row, col int) *Pixel {
	return &r.pix[r.mustIndex(row, col)]
}

// Row returns the pixels of one row as a slice sharing r's storage.
func (r *Raster) Row(row int) []Pixel {
	if row < 0 || row >= r.height {
		panic(fmt.Sprintf("raster: row %d outside [0,%d)", row, r.height))
	}
	start := row * r.width
	return r.pix[start : start+r.width : start+r.width]
}

// Pixels returns the whole row-major buffer. Index (row, col) lives at
// row*Width()+col. The slice shares r's storage.
func (r *Raster) Pixels() []Pixel {
	return r.pix
}

// Check returns an ErrOutOfBounds error if (row, col) is not inside r.
func (r *Raster) Check(row, col int) error {
	if !r.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d raster", ErrOutOfBounds, row, col, r.height, r.width)
	}
	return nil
}

// SameSize returns an ErrDimensionMismatch error unless r and other have
// identical dimensions.
func (r *Raster) SameSize(other *Raster) error {
	if r.height != other.height || r.width != other.width {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, r.height, r.width, other.height, other.width)
	}
	return nil
}

// Fill sets every pixel to p.
func (r *Raster) Fill(p Pixel) {
	for i := range r.pix {
		r.pix[i] = p
	}
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	pix := make([]Pixel, len(r.pix))
	copy(pix, r.pix)
	return &Raster{height: r.height, width: r.width, pix: pix}
}

// Equal reports whether r and other have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.height != other.height || r.width != other.width {
		return false
	}
	for i, p := range r.pix {
		if other.pix[i] != p {
			return false
		}
	}
	return true
}

// String describes the raster dimensions.
func (r *Raster) String() string {
	return fmt.Sprintf("Raster height %d width %d", r.height, r.width)
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image. The rectangle is (0,0)-(Width,Height).
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At implements image.Image using (x, y) = (col, row). Points outside the
// raster return transparent black, as the standard library images do.
func (r *Raster) At(x, y int) color.Color {
	if !r.InBounds(y, x) {
		return color.RGBA{}
	}
	p := r.pix[r.index(y, x)]
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

func (r *Raster) index(row, col int) int {
	return row*r.width + col
}

func (r *Raster) mustIndex(row, col int) int {
	if !r.InBounds(row, col) {
		panic(fmt.Sprintf("raster: (%d,%d) outside %dx%d raster", row, col, r.height, r.width))
	}
	return r.index(row, col)
}
