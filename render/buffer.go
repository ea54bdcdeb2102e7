package render

import "math"

// minPointCoverage keeps sub-pixel points visible on coarse rasters
const minPointCoverage = 0.6

// Raster is a low-resolution light buffer with coverage-weighted screen blending
// Used where the device has far fewer pixels than the logical surface (terminal half-blocks)
type Raster struct {
	pix    []RGB
	width  int
	height int
}

// NewRaster creates a raster with the specified dimensions
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(r.pix) < size {
		r.pix = make([]RGB, size)
	} else {
		r.pix = r.pix[:size]
	}
	r.width = width
	r.height = height
}

// Size returns raster dimensions in device pixels
func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

// Fill resets all pixels to bg using exponential copy
func (r *Raster) Fill(bg RGB) {
	if len(r.pix) == 0 {
		return
	}
	r.pix[0] = bg
	for filled := 1; filled < len(r.pix); filled *= 2 {
		copy(r.pix[filled:], r.pix[:filled])
	}
}

// At returns the pixel at (x, y), black when out of bounds
func (r *Raster) At(x, y int) RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return RGBBlack
	}
	return r.pix[y*r.width+x]
}

// Plot screen-blends c into (x, y) with alpha
func (r *Raster) Plot(x, y int, c RGB, alpha float64) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height || alpha <= 0 {
		return
	}
	idx := y*r.width + x
	r.pix[idx] = Screen(r.pix[idx], c, alpha)
}

// Disc shades a circle in device coordinates; shade returns color and alpha at normalized radius t
func (r *Raster) Disc(cx, cy, rad float64, shade func(t float64) RGBA) {
	if rad < 0.5 {
		// Sub-pixel: one pixel with area coverage
		cov := math.Max(math.Pi*rad*rad, minPointCoverage)
		c := shade(0)
		r.Plot(int(math.Floor(cx)), int(math.Floor(cy)), c.RGB, c.A*math.Min(1, cov))
		return
	}

	x0 := int(math.Floor(cx - rad))
	x1 := int(math.Ceil(cx + rad))
	y0 := int(math.Floor(cy - rad))
	y1 := int(math.Ceil(cy + rad))
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= r.height {
			continue
		}
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= r.width {
				continue
			}
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			// One pixel of anti-aliasing at the rim
			cov := rad + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			c := shade(math.Min(1, d/rad))
			r.Plot(x, y, c.RGB, c.A*cov)
		}
	}
}

// Line walks a DDA line in device coordinates; shade returns color and alpha at parameter t
func (r *Raster) Line(x0, y0, x1, y1, width float64, shade func(t float64) RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	cov := math.Min(1, math.Max(width, 0.25))
	if steps == 0 {
		c := shade(0)
		r.Plot(int(math.Floor(x0)), int(math.Floor(y0)), c.RGB, c.A*cov)
		return
	}
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(x0 + dx*t))
		py := int(math.Floor(y0 + dy*t))
		if px == lastX && py == lastY {
			continue
		}
		lastX, lastY = px, py
		c := shade(t)
		r.Plot(px, py, c.RGB, c.A*cov)
	}
}
