package components

import "github.com/yohamta/donburi"

// ScoreData is the current run's tally.
type ScoreData struct {
	Score     int
	Collected int // clouds turned into balls
}

var Score = donburi.NewComponentType[ScoreData]()
