package component

// Pointer is the last known mouse position in logical pixels
type Pointer struct {
	X, Y   float64
	Active bool
}
