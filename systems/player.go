package systems

import (
	"log"

	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems/movement"
	"github.com/automoto/warpzone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Direction priority when several are held
var moveActions = []cfg.ActionID{
	cfg.ActionMoveUp,
	cfg.ActionMoveDown,
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
}

// UpdatePlayer turns held directions into one-cell steps
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(e)
	})
}

func updateSinglePlayer(e *donburi.Entry) {
	trigger := components.WarpTrigger.Get(e)
	if trigger.IsWarping() {
		return
	}

	mover := movement.NewGridMover(e)
	if mover.IsMoving() {
		return
	}

	input := components.Input.Get(e)
	for _, action := range moveActions {
		if !input.Current[action] {
			continue
		}
		direction := cfg.DirectionForAction(action)
		if !mover.Move(direction, 1) {
			// Blocked: turn toward the wall
			mover.Face(direction)
		}
		return
	}
}

// UpdateGate toggles the warping gate of every player on Interact
func UpdateGate(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Input.Get(e).Action(cfg.ActionInteract).JustPressed {
			return
		}
		ToggleGate(e)
	})
}

// ToggleGate opens a closed warping gate or closes an open one
func ToggleGate(e *donburi.Entry) {
	trigger := components.WarpTrigger.Get(e)
	if trigger.IsWarpingEnabled() {
		trigger.DisableWarping()
	} else {
		trigger.EnableWarping()
	}
	log.Printf("[warp] gate enabled=%v", trigger.IsWarpingEnabled())
}
