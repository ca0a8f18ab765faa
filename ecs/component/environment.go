package component

type Ground struct {
	Size         float64
	Subdivisions int
}

var GroundComponent = NewComponent[Ground]()

type Light struct {
	Intensity float64
}

var LightComponent = NewComponent[Light]()
