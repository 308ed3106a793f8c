package raster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Pixel is one grid cell with 8-bit red, green and blue channels.
type Pixel struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

var (
	// Black is the pixel (0, 0, 0).
	Black = Pixel{}

	// White is the pixel (255, 255, 255).
	White = Pixel{R: 255, G: 255, B: 255}
)

// RGB builds a Pixel from int channel values, clamping each to [0, 255].
func RGB(r, g, b int) Pixel {
	return Pixel{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Red returns the red channel as an int.
func (p Pixel) Red() int { return int(p.R) }

// Green returns the green channel as an int.
func (p Pixel) Green() int { return int(p.G) }

// Blue returns the blue channel as an int.
func (p Pixel) Blue() int { return int(p.B) }

// SetRed sets the red channel, clamping v to [0, 255].
func (p *Pixel) SetRed(v int) { p.R = clampChannel(v) }

// SetGreen sets the green channel, clamping v to [0, 255].
func (p *Pixel) SetGreen(v int) { p.G = clampChannel(v) }

// SetBlue sets the blue channel, clamping v to [0, 255].
func (p *Pixel) SetBlue(v int) { p.B = clampChannel(v) }

// SetColor sets all three channels at once, clamping each to [0, 255].
func (p *Pixel) SetColor(r, g, b int) {
	*p = RGB(r, g, b)
}

// Average returns (r+g+b)/3 as a float. Callers that need the integer
// gray level truncate it with int().
func (p Pixel) Average() float64 {
	return float64(int(p.R)+int(p.G)+int(p.B)) / 3.0
}

// ColorDistance returns the Euclidean distance between p and other in RGB
// space. The result ranges from 0 (identical) to about 441.67 (black vs white).
func (p Pixel) ColorDistance(other Pixel) float64 {
	return floats.Distance(p.vector(), other.vector(), 2)
}

// String formats the pixel as "(r,g,b)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.R, p.G, p.B)
}

func (p Pixel) vector() []float64 {
	return []float64{float64(p.R), float64(p.G), float64(p.B)}
}

// clampChannel pins v to the 8-bit channel range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
