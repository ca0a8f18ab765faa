package component

type Camera struct {
	Yaw   float64
	Pitch float64
	FOV   float64
}

var CameraComponent = NewComponent[Camera]()

type ControllableCamera struct{}

var ControllableCameraComponent = NewComponent[ControllableCamera]()
