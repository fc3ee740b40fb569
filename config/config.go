package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// GridConfig contains grid movement configuration values
type GridConfig struct {
	CellSize     float64 // Pixels per grid cell
	StepDuration float32 // Seconds to walk one cell
	TickRate     int     // Simulation ticks per second
	SpaceCell    int     // resolv broadphase cell size
	ActorSize    float64 // Collision size of a warper (square)
}

// WarpConfig contains warp trigger configuration values
type WarpConfig struct {
	StartEnabled   bool // Initial value of the warping gate for new warpers
	LogTransitions bool // Log enter/exit transitions
	FlashFrames    int  // Frames the HUD shows the last warp event
	SaveOnFinish   bool // Persist the drop position when a warp finishes
}

// LevelConfig contains level loading configuration values
type LevelConfig struct {
	Dir     string // Directory holding .tmx files inside the level filesystem
	Default string // Level loaded when none is requested
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool   // Draw collision outlines
	ShowPanel     bool   // Show the ebitenui warp panel
	TuningPath    string // YAML tuning file, empty = none
	WatchTuning   bool   // Reload the tuning file when it changes
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64
	HUDMargin     float64
	BackgroundCol color.RGBA
	WallColor     color.RGBA
	ZoneColor     color.RGBA
	DropZoneColor color.RGBA
	WarperColor   color.RGBA
	WarpingColor  color.RGBA
	TextColor     color.RGBA
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSpeed float64 // Lerp factor per tick (0-1)
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Warp WarpConfig
var Level LevelConfig
var Debug DebugConfig
var UI UIConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 20, G: 24, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "warpzone",
	}

	Grid = GridConfig{
		CellSize:     16,
		StepDuration: 0.15,
		TickRate:     60,
		SpaceCell:    16,
		ActorSize:    14,
	}

	Warp = WarpConfig{
		StartEnabled:   true,
		LogTransitions: true,
		FlashFrames:    90, // 1.5 seconds at 60fps
		SaveOnFinish:   true,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "levels/warp_demo.tmx",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowColliders: false,
		ShowPanel:     false,
	}

	UI = UIConfig{
		HUDFontSize:   10,
		HUDMargin:     6,
		BackgroundCol: DarkBlue,
		WallColor:     Grey,
		ZoneColor:     Purple,
		DropZoneColor: Green,
		WarperColor:   LightBlue,
		WarpingColor:  Orange,
		TextColor:     White,
	}

	Camera = CameraConfig{
		FollowSpeed: 0.15,
	}
}
