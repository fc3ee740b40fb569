package systems

import (
	"log"

	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWarp runs the per-tick check of every warp trigger and then delivers
// the warp events published during this tick.
// Must run AFTER UpdateTriggers.
func UpdateWarp(ecs *ecs.ECS) {
	components.WarpTrigger.Each(ecs.World, func(e *donburi.Entry) {
		trigger := components.WarpTrigger.Get(e)
		// Follows tuning reloads
		trigger.LogTransitions = cfg.Warp.LogTransitions
		trigger.Update()
	})

	components.WarpEvent.ProcessEvents(ecs.World)

	if hud := getWarpHUD(ecs.World); hud != nil && hud.Timer > 0 {
		hud.Timer--
	}
}

// SubscribeWarpEvents registers the world-level warp event handlers
func SubscribeWarpEvents(w donburi.World) {
	components.WarpEvent.Subscribe(w, onWarpEvent)
}

func onWarpEvent(w donburi.World, event components.WarpEventData) {
	hud := getWarpHUD(w)
	if hud != nil {
		hud.Message = warpMessages[event.Kind]
		hud.Timer = cfg.Warp.FlashFrames
	}

	if event.Kind != components.WarpFinished {
		return
	}
	if hud != nil {
		hud.Warps++
	}
	if cfg.Warp.SaveOnFinish {
		saveWarpProgress(w, event.Warper, hud)
	}
}

var warpMessages = map[components.WarpEventKind]string{
	components.WarpEntered:  "Warp zone",
	components.WarpStarted:  "Warping...",
	components.WarpFinished: "Arrived",
}

func saveWarpProgress(w donburi.World, warper *donburi.Entry, hud *components.WarpHUDData) {
	if warper == nil || !warper.Valid() {
		return
	}
	progress := &SavedProgress{}
	if levelEntry, ok := components.Level.First(w); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			progress.Level = level.Name
		}
	}
	mover := components.GridMover.Get(warper)
	progress.X = mover.Position.X
	progress.Y = mover.Position.Y
	if hud != nil {
		progress.Warps = hud.Warps
	}
	// SaveProgress logs its own failures
	if err := SaveProgress(progress); err != nil {
		return
	}
	log.Printf("[persistence] saved %s at (%.0f,%.0f)", progress.Level, progress.X, progress.Y)
}

func getWarpHUD(w donburi.World) *components.WarpHUDData {
	entry, ok := components.WarpHUD.First(w)
	if !ok {
		return nil
	}
	return components.WarpHUD.Get(entry)
}
