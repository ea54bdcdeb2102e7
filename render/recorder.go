package render

// OpKind identifies a recorded drawing call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillCircle
	OpFillRadial
	OpStrokeLine
	OpStrokeGradient
	OpPresent
)

// Op is one recorded drawing call; unused fields stay zero
type Op struct {
	Kind   OpKind
	X, Y   float64
	X1, Y1 float64
	R      float64
	Color  RGBA
	Stops  []Stop
}

// Recorder is a Surface that stores calls instead of drawing, for tests and diagnostics
type Recorder struct {
	Ops []Op

	width, height int
	scale         float64
	Resizes       int
}

// NewRecorder creates a recorder with a logical size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, scale: 1}
}

func (r *Recorder) Resize(width, height int, scale float64) {
	r.width = width
	r.height = height
	r.scale = scale
	r.Resizes++
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Scale returns the device scale given at the last Resize
func (r *Recorder) Scale() float64 {
	return r.scale
}

func (r *Recorder) Clear(bg RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: bg.WithAlpha(1)})
}

func (r *Recorder) FillCircle(x, y, rad float64, c RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) FillRadialGradient(x, y, rad float64, stops ...Stop) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRadial, X: x, Y: y, R: rad, Stops: append([]Stop(nil), stops...)})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X: x0, Y: y0, X1: x1, Y1: y1, R: width, Color: c})
}

func (r *Recorder) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...Stop) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeGradient, X: x0, Y: y0, X1: x1, Y1: y1, R: width, Stops: append([]Stop(nil), stops...)})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded ops
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
