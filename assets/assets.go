package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/automoto/warpzone/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	LevelFS embed.FS
)

// Rect is an axis aligned rectangle in world pixels
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X float64
	Y float64
}

// WarpZoneSpawn is a warp zone volume and its destination descriptor
type WarpZoneSpawn struct {
	Rect
	Name              string
	DropZone          string
	OffsetX, OffsetY  float64
	PostDropDirection config.Direction
	PostDropSteps     int
}

// DropZoneSpawn is a named drop-off point
type DropZoneSpawn struct {
	Rect
	Name string
}

type Level struct {
	Walls        []Rect
	WarpZones    []WarpZoneSpawn
	DropZones    []DropZoneSpawn
	PlayerSpawns []PlayerSpawn
	Name         string
	Width        int
	Height       int
	TileWidth    int
	TileHeight   int
}

// DropZone looks up a drop zone by name
func (l *Level) DropZone(name string) (DropZoneSpawn, bool) {
	for _, dz := range l.DropZones {
		if dz.Name == name {
			return dz, true
		}
	}
	return DropZoneSpawn{}, false
}

// LoadLevels discovers all .tmx files in dir within fsys and loads them sorted by name
func LoadLevels(fsys fs.FS, dir string) ([]Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS for levels on disk.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:       filepath.Base(levelPath),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	// Walls sit on tiles, so a step must be exactly one tile
	if float64(level.TileWidth) != config.Grid.CellSize || float64(level.TileHeight) != config.Grid.CellSize {
		return nil, fmt.Errorf("%s: tile size %dx%d does not match grid cell size %v",
			levelPath, level.TileWidth, level.TileHeight, config.Grid.CellSize)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, objectRect(o))
			}
		case "WarpZones":
			for _, o := range og.Objects {
				zone, err := parseWarpZone(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", levelPath, err)
				}
				level.WarpZones = append(level.WarpZones, zone)
			}
		case "DropZones":
			for _, o := range og.Objects {
				if o.Name == "" {
					return nil, fmt.Errorf("%s: drop zone %d has no name", levelPath, o.ID)
				}
				level.DropZones = append(level.DropZones, DropZoneSpawn{
					Rect: objectRect(o),
					Name: o.Name,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X: o.X,
					Y: o.Y,
				})
			}
		}
	}

	// Every warp zone must point at an existing drop zone
	for _, zone := range level.WarpZones {
		if _, ok := level.DropZone(zone.DropZone); !ok {
			return nil, fmt.Errorf("%s: warp zone %q references unknown drop zone %q", levelPath, zone.Name, zone.DropZone)
		}
	}

	return level, nil
}

func parseWarpZone(o *tiled.Object) (WarpZoneSpawn, error) {
	dropZone := o.Properties.GetString("dropZone")
	if dropZone == "" {
		return WarpZoneSpawn{}, fmt.Errorf("warp zone %q has no dropZone property", o.Name)
	}

	direction, err := config.ParseDirection(o.Properties.GetString("postDropDirection"))
	if err != nil {
		return WarpZoneSpawn{}, fmt.Errorf("warp zone %q: %w", o.Name, err)
	}

	steps := o.Properties.GetInt("postDropSteps")
	if steps < 0 {
		return WarpZoneSpawn{}, fmt.Errorf("warp zone %q: postDropSteps must not be negative, got %d", o.Name, steps)
	}
	if steps > 0 && direction == config.DirectionNone {
		return WarpZoneSpawn{}, fmt.Errorf("warp zone %q: postDropSteps %d needs a postDropDirection", o.Name, steps)
	}

	return WarpZoneSpawn{
		Rect:              objectRect(o),
		Name:              o.Name,
		DropZone:          dropZone,
		OffsetX:           o.Properties.GetFloat("offsetX"),
		OffsetY:           o.Properties.GetFloat("offsetY"),
		PostDropDirection: direction,
		PostDropSteps:     steps,
	}, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{
		X:      o.X,
		Y:      o.Y,
		Width:  o.Width,
		Height: o.Height,
	}
}
