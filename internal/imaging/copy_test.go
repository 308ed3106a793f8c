package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

func TestCopy(t *testing.T) {
	dst := raster.NewFilled(10, 12, raster.White)
	src := createGradientRaster(4, 5)

	if err := Copy(dst, src, 2, 3); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	if got, want := dst.PixelAt(2, 3), src.PixelAt(0, 0); got != want {
		t.Errorf("src (0,0) at dst (2,3): got %v, want %v", got, want)
	}

	for row := 0; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			inside := row >= 2 && row < 6 && col >= 3 && col < 8
			got := dst.PixelAt(row, col)
			if inside {
				if want := src.PixelAt(row-2, col-3); got != want {
					t.Fatalf("(%d,%d): got %v, want %v", row, col, got, want)
				}
			} else if got != raster.White {
				t.Fatalf("(%d,%d) outside footprint changed to %v", row, col, got)
			}
		}
	}
}

func TestCopy_ClipsSilently(t *testing.T) {
	dst := raster.NewFilled(4, 4, raster.White)
	src := raster.NewFilled(10, 10, raster.Pixel{R: 9})

	if err := Copy(dst, src, 2, 1); err != nil {
		t.Fatalf("Copy should clip without error, got %v", err)
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := raster.White
			if row >= 2 && col >= 1 {
				want = raster.Pixel{R: 9}
			}
			if got := dst.PixelAt(row, col); got != want {
				t.Errorf("(%d,%d): got %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestCopy_OffsetPastDestination(t *testing.T) {
	dst := raster.NewFilled(3, 3, raster.White)
	orig := dst.Clone()

	if err := Copy(dst, createGradientRaster(2, 2), 5, 5); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !dst.Equal(orig) {
		t.Error("copy entirely outside the destination should change nothing")
	}
}

func TestCopy_NegativeOffset(t *testing.T) {
	dst := raster.New(3, 3)
	for _, off := range [][2]int{{-1, 0}, {0, -1}} {
		err := Copy(dst, raster.New(1, 1), off[0], off[1])
		if !errors.Is(err, raster.ErrOutOfBounds) {
			t.Errorf("offset %v: got %v, want ErrOutOfBounds", off, err)
		}
	}
}

func TestCompose_LaterPlacementsWin(t *testing.T) {
	dst := raster.New(3, 3)
	a := raster.NewFilled(2, 2, raster.Pixel{R: 1})
	b := raster.NewFilled(2, 2, raster.Pixel{R: 2})

	if err := Compose(dst, Placement{Source: a}, Placement{Source: b, Row: 1, Col: 1}); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if got := dst.PixelAt(0, 0).R; got != 1 {
		t.Errorf("(0,0): got %d, want 1", got)
	}
	if got := dst.PixelAt(1, 1).R; got != 2 {
		t.Errorf("(1,1) overlap: got %d, want 2", got)
	}
}

func TestCompose_NilSource(t *testing.T) {
	if err := Compose(raster.New(1, 1), Placement{}); err == nil {
		t.Error("Compose should fail for a placement without a source")
	}
}

func TestCollage(t *testing.T) {
	flower1 := raster.NewFilled(100, 50, raster.Pixel{R: 200, G: 10, B: 20})
	flower2 := raster.NewFilled(100, 50, raster.Pixel{R: 30, G: 40, B: 250})
	dst := raster.NewFilled(600, 120, raster.White)

	if err := Collage(dst, flower1, flower2, nil); err != nil {
		t.Fatalf("Collage failed: %v", err)
	}

	noBlue := raster.Pixel{R: 30, G: 40, B: 0}
	tests := []struct {
		row  int
		want raster.Pixel
	}{
		{0, flower1.PixelAt(0, 0)},
		{150, flower2.PixelAt(0, 0)},
		{250, flower1.PixelAt(0, 0)},
		{350, noBlue},
		{450, flower1.PixelAt(0, 0)},
		{599, flower2.PixelAt(0, 0)},
	}

	for _, tt := range tests {
		if got := dst.PixelAt(tt.row, 10); got != tt.want {
			t.Errorf("row %d col 10: got %v, want %v", tt.row, got, tt.want)
		}
		// Mirrored onto the right side.
		if got := dst.PixelAt(tt.row, 119-10); got != tt.want {
			t.Errorf("row %d col 109: got %v, want %v", tt.row, got, tt.want)
		}
		// Between the strip and its reflection the background survives.
		if got := dst.PixelAt(tt.row, 55); got != raster.White {
			t.Errorf("row %d col 55: got %v, want white", tt.row, got)
		}
	}

	if flower2.PixelAt(0, 0).B != 250 {
		t.Error("Collage must not zero the blue channel of its input")
	}
}

func TestCollage_CustomRows(t *testing.T) {
	a := raster.NewFilled(2, 2, raster.Pixel{R: 1})
	b := raster.NewFilled(2, 2, raster.Pixel{R: 2, B: 9})
	dst := raster.New(4, 4)

	if err := Collage(dst, a, b, []int{0, 2}); err != nil {
		t.Fatalf("Collage failed: %v", err)
	}

	if got := dst.PixelAt(0, 0); got != (raster.Pixel{R: 1}) {
		t.Errorf("(0,0): got %v", got)
	}
	if got := dst.PixelAt(3, 3); got != (raster.Pixel{R: 2, B: 9}) {
		t.Errorf("(3,3) mirrored from (3,0): got %v", got)
	}
}

func TestCollageSize(t *testing.T) {
	a := raster.New(100, 80)
	b := raster.New(120, 60)

	h, w := CollageSize(a, b, nil)
	if h != 620 || w != 80 {
		t.Errorf("got %dx%d, want 620x80", h, w)
	}
}
