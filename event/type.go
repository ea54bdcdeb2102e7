package event

// Type identifies a host signal
type Type uint8

const (
	// Resize carries the new logical viewport in W/H and the device pixel ratio in DPR
	Resize Type = iota

	// PointerMove carries the pointer position in logical pixels in X/Y
	PointerMove

	// PointerLeave deactivates the pointer
	PointerLeave

	// Visibility carries page/window visibility in Flag
	Visibility

	// Intersection carries whether the surface is within the visible region in Flag
	Intersection

	// ReducedMotion carries the reduced-motion preference in Flag
	ReducedMotion
)

var typeNames = [...]string{
	Resize:        "resize",
	PointerMove:   "pointer_move",
	PointerLeave:  "pointer_leave",
	Visibility:    "visibility",
	Intersection:  "intersection",
	ReducedMotion: "reduced_motion",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is a value-typed host signal; unused fields stay zero
type Event struct {
	Type Type
	X, Y float64
	W, H float64
	DPR  float64
	Flag bool
}
