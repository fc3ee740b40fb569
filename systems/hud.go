package systems

import (
	"fmt"

	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/fonts"
	"github.com/automoto/warpzone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the warp gate state, the warp counter and the last warp
// notification in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()

	lines := hudLines(e)
	margin := int(config.UI.HUDMargin)
	lineHeight := int(config.UI.HUDFontSize) + 4
	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+lineHeight*(i+1), config.UI.TextColor)
	}
}

func hudLines(e *ecs.ECS) []string {
	var lines []string

	if playerEntry, ok := tags.Player.First(e.World); ok {
		trigger := components.WarpTrigger.Get(playerEntry)
		gate := "open"
		if !trigger.IsWarpingEnabled() {
			gate = "closed"
		}
		state := "idle"
		if trigger.IsWarping() {
			state = "warping"
		}
		lines = append(lines, fmt.Sprintf("Gate: %s  State: %s", gate, state))
	}

	if hud := getWarpHUD(e.World); hud != nil {
		lines = append(lines, fmt.Sprintf("Warps: %d", hud.Warps))
		if hud.Timer > 0 && hud.Message != "" {
			lines = append(lines, hud.Message)
		}
	}
	return lines
}
