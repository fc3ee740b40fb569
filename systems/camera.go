package systems

import (
	"math"

	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	mover := components.GridMover.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	half := config.Grid.CellSize / 2
	targetX := clampAxis(mover.Position.X+half, float64(config.C.Width), float64(levelData.CurrentLevel.Width))
	targetY := clampAxis(mover.Position.Y+half, float64(config.C.Height), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSpeed
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSpeed
}

// clampAxis keeps the level filling the screen along one axis, or centers
// the level when it is smaller than the screen.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
