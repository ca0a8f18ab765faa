package component

import "github.com/milk9111/towerdefense/common"

// Tower fires projectiles at the nearest target whenever ShootingTimer wraps.
type Tower struct {
	DefID            string
	ShootingTimer    Timer
	ProjectileOffset common.Vec3
}

var TowerComponent = NewComponent[Tower]()

// Placed marks towers built by the player; they are cleared when the session resets.
type Placed struct{}

var PlacedComponent = NewComponent[Placed]()
