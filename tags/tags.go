package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
	Cloud      = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
	ResolvDeadZone   = "deadzone"
	ResolvCloud      = "cloud"
)
