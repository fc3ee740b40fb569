package systems

import (
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement advances every grid step by one tick
func UpdateMovement(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.Grid.TickRate)
	components.GridMover.Each(ecs.World, func(e *donburi.Entry) {
		movement.Advance(e, dt)
	})
}
