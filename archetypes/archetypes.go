package archetypes

import (
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Warper = newArchetype(
		tags.Player,
		components.Object,
		components.GridMover,
		components.Input,
		components.WarpTrigger,
		components.TriggerContacts,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	WarpZone = newArchetype(
		tags.WarpZone,
		components.WarpZone,
		components.Object,
	)
	DropZone = newArchetype(
		tags.DropZone,
		components.DropZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.WarpHUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
