package components

import (
	"github.com/automoto/skyball/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData tracks which named animation an entity is playing. Frames
// are advanced by UpdateAnimations; nothing here touches images.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	Current          string
	Animations       map[string]*animations.Animation
}

// SetAnimation switches to name and restarts it. Switching to the animation
// already playing restarts it too, so a second jump replays from frame one.
func (a *AnimationData) SetAnimation(name string) {
	anim, ok := a.Animations[name]
	if !ok {
		a.CurrentAnimation = nil
		a.Current = name
		return
	}
	a.CurrentAnimation = anim
	a.Current = name
	anim.Restart()
}

// Finished reports whether a non-looping animation reached its last frame.
func (a *AnimationData) Finished() bool {
	return a.CurrentAnimation == nil || (a.CurrentAnimation.FreezeOnComplete && a.CurrentAnimation.Looped)
}

var Animation = donburi.NewComponentType[AnimationData]()
