package imaging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one pixel in several representations.
type ColorResult struct {
	Row     int          `json:"row"`
	Col     int          `json:"col"`
	Hex     string       `json:"hex"` // "#RRGGBB"
	RGB     raster.Pixel `json:"rgb"`
	HSL     HSLColor     `json:"hsl"`
	Average float64      `json:"average"` // (r+g+b)/3, untruncated
}

// SampleColor reads the pixel at (row, col).
//
// Parameters:
//   - r: The raster to sample.
//   - row: 0-based row (0 = top).
//   - col: 0-based column (0 = left).
//
// Returns:
//   - *ColorResult: The pixel as RGB, hex, HSL and channel average.
//   - error: Non-nil (wrapping raster.ErrOutOfBounds) if (row, col) is outside r.
func SampleColor(r *raster.Raster, row, col int) (*ColorResult, error) {
	if err := r.Check(row, col); err != nil {
		return nil, err
	}

	p := r.PixelAt(row, col)
	c := toColorful(p)
	h, s, l := c.Hsl()

	return &ColorResult{
		Row:     row,
		Col:     col,
		Hex:     strings.ToUpper(c.Hex()),
		RGB:     p,
		HSL:     HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Average: p.Average(),
	}, nil
}

// ChannelSummary holds the mean and standard deviation of one channel.
type ChannelSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// StatsResult summarises the channels of a raster.
type StatsResult struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Red    ChannelSummary `json:"red"`
	Green  ChannelSummary `json:"green"`
	Blue   ChannelSummary `json:"blue"`
}

// ChannelStats computes the per-channel mean and sample standard deviation of
// r. An empty raster yields zero summaries.
func ChannelStats(r *raster.Raster) *StatsResult {
	result := &StatsResult{Width: r.Width(), Height: r.Height()}

	pix := r.Pixels()
	if len(pix) == 0 {
		return result
	}

	red := make([]float64, len(pix))
	green := make([]float64, len(pix))
	blue := make([]float64, len(pix))
	for i, p := range pix {
		red[i] = float64(p.R)
		green[i] = float64(p.G)
		blue[i] = float64(p.B)
	}

	result.Red = summarize(red)
	result.Green = summarize(green)
	result.Blue = summarize(blue)
	return result
}

func summarize(values []float64) ChannelSummary {
	if len(values) == 1 {
		return ChannelSummary{Mean: values[0]}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return ChannelSummary{Mean: mean, StdDev: std}
}

// ColorFrequency represents a color and its occurrence frequency in a raster.
type ColorFrequency struct {
	Hex        string       `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64      `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        raster.Pixel `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in r.
//
// Channels are quantized to multiples of 16 before counting so that near
// identical colors group together:
//
//	quantized = (original / 16) * 16
//
// Ties are broken by hex value so the result is deterministic.
func DominantColors(r *raster.Raster, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	counts := make(map[raster.Pixel]int)
	for _, p := range r.Pixels() {
		q := raster.Pixel{R: p.R / 16 * 16, G: p.G / 16 * 16, B: p.B / 16 * 16}
		counts[q]++
	}

	total := len(r.Pixels())
	colors := make([]ColorFrequency, 0, len(counts))
	for p, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        strings.ToUpper(toColorful(p).Hex()),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        p,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}

func toColorful(p raster.Pixel) colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}
