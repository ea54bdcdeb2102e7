package render

// Surface is the 2D drawing target the field renders onto
// Coordinates are logical pixels; implementations apply their own device scale
type Surface interface {
	// Resize sets the logical size and the device scale (device px per logical px)
	Resize(width, height int, scale float64)

	// Size returns the logical size
	Size() (width, height int)

	// Clear fills the whole surface with an opaque background
	Clear(bg RGB)

	FillCircle(x, y, r float64, c RGBA)

	// FillRadialGradient fills a disc whose color runs through stops from center (0) to rim (1)
	FillRadialGradient(x, y, r float64, stops ...Stop)

	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)

	// StrokeLinearGradient strokes a line whose color runs through stops from start (0) to end (1)
	StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...Stop)

	// Present makes the frame visible
	Present()
}
