package systems

import (
	"image/color"

	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset converts world coordinates to screen coordinates
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel draws walls, zones and warpers as flat rectangles
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.UI.BackgroundCol)

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		fillObject(screen, components.Object.Get(entry).Object, camX, camY, config.UI.WallColor)
	})
	tags.DropZone.Each(e.World, func(entry *donburi.Entry) {
		outlineObject(screen, components.Object.Get(entry).Object, camX, camY, config.UI.DropZoneColor)
	})
	tags.WarpZone.Each(e.World, func(entry *donburi.Entry) {
		outlineObject(screen, components.Object.Get(entry).Object, camX, camY, config.UI.ZoneColor)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		clr := config.UI.WarperColor
		if components.WarpTrigger.Get(entry).IsWarping() {
			clr = config.UI.WarpingColor
		}
		// Draw the full cell at the interpolated position rather than the inset collider
		mover := components.GridMover.Get(entry)
		size := float32(config.Grid.CellSize)
		vector.FillRect(screen, float32(mover.Position.X+camX), float32(mover.Position.Y+camY), size, size, clr, false)
	})
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, camX, camY float64, c color.Color) {
	vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), c, false)
}

func outlineObject(screen *ebiten.Image, obj *resolv.Object, camX, camY float64, c color.Color) {
	x := float32(obj.X + camX)
	y := float32(obj.Y + camY)
	w := float32(obj.W)
	h := float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
