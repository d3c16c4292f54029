package systems

import (
	"github.com/automoto/skyball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every running tween sequence and applies its value.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(FrameDelta())
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			return
		}
		v, _, done := tw.Sequence.Update(dt)
		if tw.Apply != nil {
			tw.Apply(v)
		}
		if done {
			tw.Sequence = nil
			if tw.Done != nil {
				tw.Done()
			}
		}
	})
}
