package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftfield/parameter"
)

// halfBlock paints the top half of a cell with the foreground color
const halfBlock = '▀'

type textRun struct {
	col, row int
	text     string
	fg       RGB
}

// CellSurface rasterizes onto a tcell screen using half-block glyphs
// Each terminal cell holds two vertically stacked device pixels
type CellSurface struct {
	screen tcell.Screen
	raster *Raster

	width, height int
	scale         float64

	// Logical to device pixel factors, derived from the screen size
	kx, ky float64

	texts []textRun
}

// NewCellSurface binds a surface to an initialized screen
// The logical size starts at the screen size in default cell pixels
func NewCellSurface(screen tcell.Screen) *CellSurface {
	s := &CellSurface{
		screen: screen,
		raster: NewRaster(0, 0),
		scale:  1,
	}
	cols, rows := screen.Size()
	s.Resize(cols*parameter.DefaultCellWidth, rows*parameter.DefaultCellHeight, 1)
	return s
}

// Resize records the logical size and refits the raster to the screen
// The device scale is informational here; the screen size decides the raster
func (s *CellSurface) Resize(width, height int, scale float64) {
	cols, rows := s.screen.Size()
	s.raster.Resize(cols, rows*2)
	s.width = width
	s.height = height
	s.scale = scale
	s.kx, s.ky = 0, 0
	if width > 0 {
		s.kx = float64(cols) / float64(width)
	}
	if height > 0 {
		s.ky = float64(rows*2) / float64(height)
	}
}

func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Scale returns the device scale given at the last Resize
func (s *CellSurface) Scale() float64 {
	return s.scale
}

// Raster exposes the device buffer for inspection
func (s *CellSurface) Raster() *Raster {
	return s.raster
}

func (s *CellSurface) Clear(bg RGB) {
	s.raster.Fill(bg)
	s.texts = s.texts[:0]
}

func (s *CellSurface) device(x, y float64) (float64, float64) {
	return x * s.kx, y * s.ky
}

func (s *CellSurface) radius(r float64) float64 {
	return r * math.Min(s.kx, s.ky)
}

func (s *CellSurface) FillCircle(x, y, r float64, c RGBA) {
	dx, dy := s.device(x, y)
	s.raster.Disc(dx, dy, s.radius(r), func(float64) RGBA { return c })
}

func (s *CellSurface) FillRadialGradient(x, y, r float64, stops ...Stop) {
	dx, dy := s.device(x, y)
	s.raster.Disc(dx, dy, s.radius(r), func(t float64) RGBA { return SampleStops(stops, t) })
}

func (s *CellSurface) StrokeLine(x0, y0, x1, y1, width float64, c RGBA) {
	ax, ay := s.device(x0, y0)
	bx, by := s.device(x1, y1)
	s.raster.Line(ax, ay, bx, by, s.radius(width), func(float64) RGBA { return c })
}

func (s *CellSurface) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...Stop) {
	ax, ay := s.device(x0, y0)
	bx, by := s.device(x1, y1)
	s.raster.Line(ax, ay, bx, by, s.radius(width), func(t float64) RGBA { return SampleStops(stops, t) })
}

// Text queues a string drawn over the raster at the next Present
func (s *CellSurface) Text(col, row int, text string, fg RGB) {
	s.texts = append(s.texts, textRun{col: col, row: row, text: text, fg: fg})
}

// Present writes the raster as half-block cells, then queued text, and shows the screen
func (s *CellSurface) Present() {
	cols, rows := s.raster.width, s.raster.height/2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := s.raster.At(col, row*2)
			bottom := s.raster.At(col, row*2+1)
			s.screen.SetContent(col, row, halfBlock, nil, HalfBlockStyle(top, bottom))
		}
	}

	for _, t := range s.texts {
		col := t.col
		for _, r := range t.text {
			if col >= cols || t.row < 0 || t.row >= rows {
				break
			}
			if col >= 0 {
				bg := Lerp(s.raster.At(col, t.row*2), s.raster.At(col, t.row*2+1), 0.5)
				style := tcell.StyleDefault.Foreground(RGBToTcell(t.fg)).Background(RGBToTcell(Scale(bg, 0.5)))
				s.screen.SetContent(col, t.row, r, nil, style)
			}
			col++
		}
	}

	s.screen.Show()
}
