package render

import "image/color"

// RGBA is a color with straight (non-premultiplied) alpha in [0, 1]
type RGBA struct {
	RGB
	A float64
}

// WithAlpha attaches alpha to an opaque color
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// NRGBA converts to the standard library color for backends that take color.Color
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(c.A*255 + 0.5)}
}

// Stop is one gradient color stop; Offset is in [0, 1]
type Stop struct {
	Offset float64
	Color  RGBA
}

// SampleStops interpolates color and alpha at t along sorted stops
func SampleStops(stops []Stop, t float64) RGBA {
	switch len(stops) {
	case 0:
		return RGBA{}
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		k := 0.0
		if span > 0 {
			k = (t - lo.Offset) / span
		}
		return RGBA{
			RGB: Lerp(lo.Color.RGB, hi.Color.RGB, k),
			A:   lo.Color.A + (hi.Color.A-lo.Color.A)*k,
		}
	}
	return stops[len(stops)-1].Color
}
