package component

// HealthBar floats above a target. Fill is the health fraction and OffsetX keeps
// the shrinking bar left aligned.
type HealthBar struct {
	MaxHealth float64
	Fill      float64
	OffsetX   float64
}

var HealthBarComponent = NewComponent[HealthBar]()
