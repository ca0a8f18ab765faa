package component

// WalkAnimation bobs a walker up and down. Phase is in radians.
type WalkAnimation struct {
	Phase     float64
	Rate      float64
	Amplitude float64
}

var WalkAnimationComponent = NewComponent[WalkAnimation]()
