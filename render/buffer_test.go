package render

import "testing"

func solid(c RGBA) func(float64) RGBA {
	return func(float64) RGBA { return c }
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(7, 5)
	bg := RGB{10, 20, 30}
	r.Fill(bg)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if r.At(x, y) != bg {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, r.At(x, y), bg)
			}
		}
	}
	if r.At(-1, 0) != RGBBlack || r.At(7, 0) != RGBBlack {
		t.Error("out-of-bounds read should be black")
	}
}

func TestRasterResizeKeepsCapacity(t *testing.T) {
	r := NewRaster(10, 10)
	before := cap(r.pix)
	r.Resize(5, 5)
	if cap(r.pix) != before {
		t.Error("shrinking should not reallocate")
	}
	if w, h := r.Size(); w != 5 || h != 5 {
		t.Errorf("size = %dx%d, want 5x5", w, h)
	}
	r.Resize(-3, 2)
	if w, _ := r.Size(); w != 0 {
		t.Errorf("negative width should clamp to 0, got %d", w)
	}
}

func TestRasterPlotScreens(t *testing.T) {
	r := NewRaster(2, 1)
	r.Plot(0, 0, RGBWhite, 1)
	if r.At(0, 0) != RGBWhite {
		t.Errorf("full alpha white = %v", r.At(0, 0))
	}
	r.Plot(1, 0, RGB{200, 0, 0}, 0)
	if r.At(1, 0) != RGBBlack {
		t.Error("zero alpha should leave pixel")
	}
	r.Plot(5, 5, RGBWhite, 1) // ignored
}

func TestRasterSubPixelDiscVisible(t *testing.T) {
	r := NewRaster(4, 4)
	r.Disc(1.2, 2.7, 0.1, solid(RGBWhite.WithAlpha(1)))
	if r.At(1, 2) == RGBBlack {
		t.Error("sub-pixel disc should light its pixel")
	}
}

func TestRasterDiscCoverage(t *testing.T) {
	r := NewRaster(20, 20)
	r.Disc(10, 10, 3, solid(RGBWhite.WithAlpha(1)))

	center := r.At(9, 9)
	if center.R < 250 {
		t.Errorf("center = %v, want near white", center)
	}
	if r.At(0, 0) != RGBBlack || r.At(10, 16) != RGBBlack {
		t.Error("pixels outside the disc were touched")
	}
}

func TestRasterLineEndpoints(t *testing.T) {
	r := NewRaster(10, 3)
	r.Line(0.5, 1.5, 8.5, 1.5, 1, solid(RGBWhite.WithAlpha(1)))
	for x := 0; x <= 8; x++ {
		if r.At(x, 1) == RGBBlack {
			t.Errorf("pixel %d on the line not lit", x)
		}
	}
	if r.At(9, 1) != RGBBlack || r.At(3, 0) != RGBBlack {
		t.Error("line spilled outside its path")
	}
}
