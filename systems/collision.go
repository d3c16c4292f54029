package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves players through the collision space and kills any
// that touch a dead zone or fall out of the world.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := FrameDelta()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.Current() == cfg.Dead {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontalCollision(physics, obj, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj, physics.SpeedY*dt)
		obj.Update()

		if checkDeadZone(obj) || fellOutOfWorld(ecs, obj) {
			handleDeadZoneHit(e)
		}
	})
}

func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}
	wall := blockingSolid(object, check)
	if wall == nil {
		object.X += dx
		return
	}

	physics.SpeedX = 0
	object.X += check.ContactWithObject(wall).X()
}

func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.Y += dy
		return
	}
	solid := solids[0]

	if dy < 0 {
		// Head bump
		physics.SpeedY = 0
		object.Y += check.ContactWithObject(solid).Y()
		return
	}

	// Only land on solid if falling down
	physics.OnGround = solid
	physics.SpeedY = 0
	object.Y += check.ContactWithObject(solid).Y()
}

// blockingSolid returns the first solid that overlaps the object vertically.
// Solids only grazed by its top or bottom edge don't block.
func blockingSolid(object *resolv.Object, check *resolv.Collision) *resolv.Object {
	objectBottom := object.Y + object.H
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if objectBottom > solid.Y && object.Y < solid.Y+solid.H {
			return solid
		}
	}
	return nil
}

// checkDeadZone returns true if the object is colliding with a dead zone
func checkDeadZone(obj *resolv.Object) bool {
	return obj.Check(0, 0, tags.ResolvDeadZone) != nil
}

func fellOutOfWorld(ecs *ecs.ECS, obj *resolv.Object) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	b := components.Level.Get(levelEntry).CurrentLevel.Bounds()
	return obj.Y > b.Y+b.H
}

func handleDeadZoneHit(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.Machine == nil || state.Current() == cfg.Dead {
		return
	}
	state.Machine.Transition(cfg.Dead)
}
