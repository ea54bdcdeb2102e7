package render

import (
	"math"

	"github.com/tfriedel6/canvas"
)

// CanvasSurface draws through an HTML5-style canvas (SDL window or software backend)
type CanvasSurface struct {
	cv *canvas.Canvas

	width, height int
	scale         float64
}

// NewCanvasSurface wraps a canvas; the logical size defaults to the canvas size
func NewCanvasSurface(cv *canvas.Canvas) *CanvasSurface {
	return &CanvasSurface{
		cv:     cv,
		width:  cv.Width(),
		height: cv.Height(),
		scale:  1,
	}
}

// Resize records the logical size; the device scale is applied as a transform on every Clear
func (s *CanvasSurface) Resize(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.width = width
	s.height = height
	s.scale = scale
}

func (s *CanvasSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *CanvasSurface) Clear(bg RGB) {
	s.cv.SetTransform(1, 0, 0, 1, 0, 0)
	s.cv.SetGlobalAlpha(1)
	s.cv.SetFillStyle(bg.WithAlpha(1).NRGBA())
	s.cv.FillRect(0, 0, float64(s.cv.Width()), float64(s.cv.Height()))
	s.cv.SetTransform(s.scale, 0, 0, s.scale, 0, 0)
}

func (s *CanvasSurface) arc(x, y, r float64) {
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.ClosePath()
}

func (s *CanvasSurface) FillCircle(x, y, r float64, c RGBA) {
	s.cv.SetFillStyle(c.NRGBA())
	s.arc(x, y, r)
	s.cv.Fill()
}

func (s *CanvasSurface) FillRadialGradient(x, y, r float64, stops ...Stop) {
	g := s.cv.CreateRadialGradient(x, y, 0, x, y, r)
	for _, st := range stops {
		g.AddColorStop(st.Offset, st.Color.NRGBA())
	}
	s.cv.SetFillStyle(g)
	s.arc(x, y, r)
	s.cv.Fill()
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1, width float64, c RGBA) {
	s.cv.SetStrokeStyle(c.NRGBA())
	s.line(x0, y0, x1, y1, width)
}

func (s *CanvasSurface) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...Stop) {
	g := s.cv.CreateLinearGradient(x0, y0, x1, y1)
	for _, st := range stops {
		g.AddColorStop(st.Offset, st.Color.NRGBA())
	}
	s.cv.SetStrokeStyle(g)
	s.line(x0, y0, x1, y1, width)
}

func (s *CanvasSurface) line(x0, y0, x1, y1, width float64) {
	s.cv.SetLineWidth(width)
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.Stroke()
}

// Present is a no-op; the window main loop swaps buffers and snapshots read the backend image
func (s *CanvasSurface) Present() {}
