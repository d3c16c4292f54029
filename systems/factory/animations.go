package factory

import (
	"fmt"

	"github.com/automoto/skyball/assets/animations"
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
)

// GenerateAnimations builds the animation set for a character key such as
// "player" from the definitions in config.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations: make(map[string]*animations.Animation, len(defs)),
	}
	for name, def := range defs {
		animData.Animations[name] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed, def.FreezeOnComplete)
	}
	return animData
}
