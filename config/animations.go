package config

const (
	AnimIdle  = "idle"
	AnimMove  = "move"
	AnimJump  = "jump"
	AnimDeath = "death"
)

type AnimationDef struct {
	First            int
	Last             int
	Step             int
	Speed            float32
	FreezeOnComplete bool
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		AnimIdle:  {First: 0, Last: 6, Step: 1, Speed: 5},
		AnimMove:  {First: 0, Last: 7, Step: 1, Speed: 4},
		// The jump animation is the non-cancelable window of the first jump,
		// so it must not loop.
		AnimJump:  {First: 0, Last: 5, Step: 1, Speed: 3, FreezeOnComplete: true},
		AnimDeath: {First: 0, Last: 8, Step: 1, Speed: 5, FreezeOnComplete: true},
	},
}
