package factory

import (
	"github.com/automoto/warpzone/archetypes"
	"github.com/automoto/warpzone/assets"
	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/tags"
	"github.com/automoto/warpzone/warp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// objectAnchor reads the drop position from a live collision object
type objectAnchor struct {
	obj *resolv.Object
}

func (a objectAnchor) Position() math.Vec2 {
	return math.Vec2{X: a.obj.X, Y: a.obj.Y}
}

// CreateDropZone creates a named drop-off point. It is not solid and not a trigger.
func CreateDropZone(ecs *ecs.ECS, spawn assets.DropZoneSpawn) *donburi.Entry {
	drop := archetypes.DropZone.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvDropZone)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.Width, spawn.Height))
	obj.Data = drop

	components.Object.SetValue(drop, components.ObjectData{Object: obj})
	components.DropZone.SetValue(drop, components.DropZoneData{Name: spawn.Name})
	addToSpace(ecs, obj)

	return drop
}

// CreateWarpZone creates a warp trigger volume whose anchor is the drop zone entity
func CreateWarpZone(ecs *ecs.ECS, spawn assets.WarpZoneSpawn, drop *donburi.Entry) *donburi.Entry {
	zone := archetypes.WarpZone.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvWarpZone)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.Width, spawn.Height))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	components.WarpZone.SetValue(zone, components.WarpZoneData{
		Name:     spawn.Name,
		DropZone: spawn.DropZone,
		Zone: warp.Zone{
			Anchor: objectAnchor{obj: components.Object.Get(drop).Object},
			Offset: math.Vec2{X: spawn.OffsetX, Y: spawn.OffsetY},
			PostDrop: warp.Move{
				Direction: spawn.PostDropDirection,
				Steps:     spawn.PostDropSteps,
			},
		},
	})
	addToSpace(ecs, obj)

	return zone
}
