package imaging

import "github.com/ironsheep/picture-tools-mcp/internal/raster"

// ChannelMask selects which channels an operation applies to.
type ChannelMask struct {
	Red   bool `json:"red"`
	Green bool `json:"green"`
	Blue  bool `json:"blue"`
}

// recolor replaces every pixel of r with fn applied to it.
func recolor(r *raster.Raster, fn func(raster.Pixel) raster.Pixel) {
	pix := r.Pixels()
	for i, p := range pix {
		pix[i] = fn(p)
	}
}

// ZeroRed sets the red channel of every pixel to 0.
func ZeroRed(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		p.R = 0
		return p
	})
}

// ZeroGreen sets the green channel of every pixel to 0.
func ZeroGreen(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		p.G = 0
		return p
	})
}

// ZeroBlue sets the blue channel of every pixel to 0.
func ZeroBlue(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		p.B = 0
		return p
	})
}

// AllRed keeps only the red channel of every pixel.
func AllRed(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{R: p.R}
	})
}

// AllGreen keeps only the green channel of every pixel.
func AllGreen(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{G: p.G}
	})
}

// AllBlue keeps only the blue channel of every pixel.
func AllBlue(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{B: p.B}
	})
}

// Grayscale replaces all three channels of every pixel with the truncated
// channel average, so (10,10,11) becomes (10,10,10). It returns r.
func Grayscale(r *raster.Raster) *raster.Raster {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		v := uint8(p.Average())
		return raster.Pixel{R: v, G: v, B: v}
	})
	return r
}

// Negative replaces each channel selected by mask with 255 minus its value.
func Negative(r *raster.Raster, mask ChannelMask) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		if mask.Red {
			p.R = 255 - p.R
		}
		if mask.Green {
			p.G = 255 - p.G
		}
		if mask.Blue {
			p.B = 255 - p.B
		}
		return p
	})
}

// ColorShift rotates the channels of every pixel: red takes the old blue,
// green takes the old red, and blue takes the old green.
func ColorShift(r *raster.Raster) {
	recolor(r, func(p raster.Pixel) raster.Pixel {
		return raster.Pixel{R: p.B, G: p.R, B: p.G}
	})
}
