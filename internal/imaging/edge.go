package imaging

import "github.com/ironsheep/picture-tools-mcp/internal/raster"

// DefaultEdgeDistance is the color distance used when a caller does not pick
// one. Neighbouring pixels further apart than this are treated as an edge.
const DefaultEdgeDistance = 10.0

// EdgeDetection marks horizontal color changes in r as black on white.
//
// Each row is scanned left to right. For every pair of adjacent pixels
// (col, col+1), the left pixel becomes black if the two are more than
// edgeDist apart (see raster.Pixel.ColorDistance) and white otherwise.
// The comparison always uses the right neighbour's original color because
// the scan only writes pixels it has already passed.
//
// The rightmost column of every row has no neighbour and keeps its color.
// Vertical neighbours are not compared.
func EdgeDetection(r *raster.Raster, edgeDist float64) {
	for row := 0; row < r.Height(); row++ {
		pixels := r.Row(row)
		for col := 0; col < len(pixels)-1; col++ {
			if pixels[col].ColorDistance(pixels[col+1]) > edgeDist {
				pixels[col] = raster.Black
			} else {
				pixels[col] = raster.White
			}
		}
	}
}
