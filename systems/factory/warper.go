package factory

import (
	"github.com/automoto/warpzone/archetypes"
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems/movement"
	"github.com/automoto/warpzone/tags"
	"github.com/automoto/warpzone/warp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateWarper creates the player actor at the cell whose top-left corner is (x, y).
// Trigger notifications are republished as WarpEvent on the world.
func CreateWarper(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	warper := archetypes.Warper.Spawn(ecs)

	size := cfg.Grid.ActorSize
	inset := movement.Inset()
	obj := resolv.NewObject(x+inset, y+inset, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = warper

	pos := math.Vec2{X: x, Y: y}
	components.Object.SetValue(warper, components.ObjectData{Object: obj})
	components.GridMover.SetValue(warper, components.GridMoverData{
		Position: pos,
		From:     pos,
		To:       pos,
		Facing:   cfg.DirectionDown,
	})

	trigger := warp.NewTrigger(movement.NewGridMover(warper))
	trigger.LogTransitions = cfg.Warp.LogTransitions
	if !cfg.Warp.StartEnabled {
		trigger.DisableWarping()
	}

	world := ecs.World
	publish := func(kind components.WarpEventKind) warp.Listener {
		return func() {
			components.WarpEvent.Publish(world, components.WarpEventData{Warper: warper, Kind: kind})
		}
	}
	trigger.OnEnter.Subscribe(publish(components.WarpEntered))
	trigger.OnStay.Subscribe(publish(components.WarpStarted))
	trigger.OnFinish.Subscribe(publish(components.WarpFinished))

	components.WarpTrigger.SetValue(warper, components.WarpTriggerData{Trigger: trigger})
	addToSpace(ecs, obj)

	return warper
}
