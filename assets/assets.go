package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/skyball/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LevelsDir is the embedded directory holding .tmx files.
const LevelsDir = "levels"

// MustLoadLevels loads every embedded level or panics; a build without levels
// is broken.
func MustLoadLevels() []*leveldata.Level {
	levels, err := leveldata.LoadAll(levelFS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("failed to load levels: %v", err))
	}
	return levels
}
