package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/fonts"
	"github.com/automoto/warpzone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space and labels warp
// zones with their destination.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowColliders {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{200, 200, 200, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvWarpZone) {
			c = color.RGBA{255, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvDropZone) {
			c = color.RGBA{0, 255, 0, 255}
		}
		outlineObject(screen, obj, camX, camY, c)
	}

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	components.WarpZone.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		zone := components.WarpZone.Get(entry)
		dest := zone.Zone.Destination()
		label := fmt.Sprintf("%s>%s (%.0f,%.0f)", zone.Name, zone.DropZone, dest.X, dest.Y)
		text.Draw(screen, label, face, int(obj.X+camX), int(obj.Y+camY)-2, config.UI.TextColor)
	})
}
