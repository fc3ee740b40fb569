package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/warpzone/archetypes"
	"github.com/automoto/warpzone/assets"
	"github.com/automoto/warpzone/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a level file and stores it in a Level entity
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, levelPath string) (*donburi.Entry, error) {
	level, err := assets.LoadLevel(fsys, levelPath)
	if err != nil {
		return nil, err
	}
	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("%s: no player spawn points defined in map", levelPath)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry, nil
}

// PopulateLevel creates walls, drop zones and warp zones for level.
// Drop zones are created first so warp zones can resolve their anchors.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level) error {
	for _, wall := range level.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.Width, wall.Height)
	}

	drops := make(map[string]*donburi.Entry, len(level.DropZones))
	for _, dz := range level.DropZones {
		drops[dz.Name] = CreateDropZone(ecs, dz)
	}

	for _, zone := range level.WarpZones {
		drop, ok := drops[zone.DropZone]
		if !ok {
			return fmt.Errorf("warp zone %q references unknown drop zone %q", zone.Name, zone.DropZone)
		}
		CreateWarpZone(ecs, zone, drop)
	}
	return nil
}
