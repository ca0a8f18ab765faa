package component

import "github.com/milk9111/towerdefense/common"

// BloodSplash is a ground decal that fades out over its timer.
type BloodSplash struct {
	Timer    Timer
	Scale    float64
	Rotation float64
	Alpha    float64
	// Blobs are unit-scale offsets in the decal's local XZ plane.
	Blobs []common.Vec3
}

var BloodSplashComponent = NewComponent[BloodSplash]()
