package systems

import (
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads for every player.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pollInput(components.Input.Get(e), isActionPressed)
	})
}

// pollInput swaps buffers, reads the devices through pressed and merges the
// scripted presses queued since the last frame.
func pollInput(input *components.InputData, pressed func(cfg.ActionID) bool) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action := range cfg.Input.Bindings {
		if pressed(action) {
			input.Current[action] = true
		}
	}

	for action, scripted := range input.Scripted {
		if scripted {
			input.Current[action] = true
		}
	}
	input.Scripted = [cfg.ActionCount]bool{}
}

func isActionPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
