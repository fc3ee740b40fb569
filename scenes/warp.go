package scenes

import (
	"image/color"
	"io/fs"
	"log"

	"github.com/automoto/warpzone/assets"
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems"
	"github.com/automoto/warpzone/systems/factory"
	"github.com/automoto/warpzone/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WarpScene is a single level with one warper walking between warp zones
type WarpScene struct {
	ecs    *ecs.ECS
	warper *donburi.Entry

	panel     *ui.WarpPanel
	showPanel bool
}

// NewWarpScene loads levelPath from fsys and builds the world for it
func NewWarpScene(fsys fs.FS, levelPath string) (*WarpScene, error) {
	ws := &WarpScene{showPanel: cfg.Debug.ShowPanel}
	if err := ws.configure(fsys, levelPath); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *WarpScene) Update() {
	ws.ecs.Update()

	if !ws.warper.Valid() {
		return
	}
	if components.Input.Get(ws.warper).Action(cfg.ActionTogglePanel).JustPressed {
		ws.showPanel = !ws.showPanel
	}
	if ws.showPanel {
		panel := ws.getPanel()
		trigger := components.WarpTrigger.Get(ws.warper)
		warps := 0
		if hud, ok := components.WarpHUD.First(ws.ecs.World); ok {
			warps = components.WarpHUD.Get(hud).Warps
		}
		panel.SetState(trigger.IsWarpingEnabled(), trigger.IsWarping(), warps)
		panel.UI.Update()
	}
}

func (ws *WarpScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	ws.ecs.Draw(screen)
	if ws.showPanel && ws.panel != nil {
		ws.panel.UI.Draw(screen)
	}
}

func (ws *WarpScene) getPanel() *ui.WarpPanel {
	if ws.panel == nil {
		ws.panel = ui.NewWarpPanel(
			func() { systems.ToggleGate(ws.warper) },
			func() {
				if err := systems.ClearProgress(); err == nil {
					log.Printf("[persistence] progress cleared")
				}
			},
		)
	}
	return ws.panel
}

func (ws *WarpScene) configure(fsys fs.FS, levelPath string) error {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGate)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateTriggers) // Must run after movement so overlaps use this tick's position
	ecs.AddSystem(systems.UpdateWarp)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs
	systems.SubscribeWarpEvents(ecs.World)

	// Level entity first, the space is sized from it
	levelEntry, err := factory.CreateLevel(ecs, fsys, levelPath)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	factory.CreateSpace(ecs, level.Width, level.Height, cfg.Grid.SpaceCell, cfg.Grid.SpaceCell)
	if err := factory.PopulateLevel(ecs, level); err != nil {
		return err
	}
	hud := factory.CreateHUD(ecs)

	spawn := level.PlayerSpawns[0]
	x, y := spawn.X, spawn.Y
	if progress := savedProgressFor(level); progress != nil {
		x, y = progress.X, progress.Y
		components.WarpHUD.Get(hud).Warps = progress.Warps
		log.Printf("[persistence] resuming %s at (%.0f,%.0f)", level.Name, x, y)
	}

	ws.warper = factory.CreateWarper(ecs, x, y)
	half := cfg.Grid.CellSize / 2
	factory.CreateCamera(ecs, x+half, y+half)

	return nil
}

// savedProgressFor returns saved progress if it belongs to level
func savedProgressFor(level *assets.Level) *systems.SavedProgress {
	progress, err := systems.LoadProgress()
	if err != nil || progress == nil {
		return nil
	}
	if progress.Level != level.Name {
		return nil
	}
	if progress.X < 0 || progress.Y < 0 || progress.X >= float64(level.Width) || progress.Y >= float64(level.Height) {
		log.Printf("[persistence] Warning: saved position (%.0f,%.0f) is outside %s, using spawn", progress.X, progress.Y, level.Name)
		return nil
	}
	return progress
}
