package component

type Target struct {
	Speed     float64
	Health    float64
	MaxHealth float64
	HitRadius float64
}

var TargetComponent = NewComponent[Target]()
