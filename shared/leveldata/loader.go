package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupTerrain     = "Terrain"
	GroupDeadZone    = "DeadZone"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupCloudLane   = "CloudLane"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupTerrain:
			for _, o := range og.Objects {
				surface := o.Properties.GetString("surface")
				if surface == "" {
					surface = "ground"
				}
				level.Terrain = append(level.Terrain, SolidRect{
					Rect:    Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Surface: surface,
				})
			}
		case GroupDeadZone:
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupCloudLane:
			for _, o := range og.Objects {
				dir := 1.0
				if o.Properties.GetString("direction") == "left" {
					dir = -1
				}
				level.CloudLanes = append(level.CloudLanes, CloudLane{Y: o.Y, Direction: dir})
			}
		}
	}

	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: no %s objects", tmxPath, GroupPlayerSpawn)
	}

	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// sorted by name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
