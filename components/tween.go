package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData plays a gween sequence and hands each value to Apply.
type TweenData struct {
	Sequence *gween.Sequence
	Apply    func(v float32)
	Done     func()
}

var Tween = donburi.NewComponentType[TweenData]()
