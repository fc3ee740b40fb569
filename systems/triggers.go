package systems

import (
	"github.com/automoto/warpzone/components"
	"github.com/automoto/warpzone/systems/movement"
	"github.com/automoto/warpzone/tags"
	"github.com/automoto/warpzone/warp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var warperQuery = donburi.NewQuery(filter.Contains(
	components.Object,
	components.WarpTrigger,
	components.TriggerContacts,
))

// UpdateTriggers turns trigger volume overlaps into enter/stay/exit callbacks.
// An overlap seen for the first time is an enter, one seen last tick too is a
// stay and one that went away is an exit. Exits are delivered first.
func UpdateTriggers(ecs *ecs.ECS) {
	warperQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		trigger := components.WarpTrigger.Get(e)
		contacts := components.TriggerContacts.Get(e)

		current := overlappingTriggers(obj.Object)

		for _, prev := range contacts.Overlaps {
			if !containsObject(current, prev) {
				trigger.HandleExit(triggerCollider{obj: prev})
			}
		}
		for _, other := range current {
			if contacts.Contains(other) {
				trigger.HandleStay(triggerCollider{obj: other})
			} else {
				trigger.HandleEnter(triggerCollider{obj: other})
			}
		}

		contacts.Overlaps = current
	})
}

// overlappingTriggers returns the trigger volumes obj overlaps right now
func overlappingTriggers(obj *resolv.Object) []*resolv.Object {
	check := obj.Check(0, 0, tags.ResolvWarpZone)
	if check == nil {
		return nil
	}

	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tags.ResolvWarpZone) {
		if movement.Overlaps(obj.X, obj.Y, obj.W, obj.H, other) && !containsObject(out, other) {
			out = append(out, other)
		}
	}
	return out
}

func containsObject(objs []*resolv.Object, obj *resolv.Object) bool {
	for _, o := range objs {
		if o == obj {
			return true
		}
	}
	return false
}

// triggerCollider exposes the warp zone component of a collision object
type triggerCollider struct {
	obj *resolv.Object
}

func (c triggerCollider) entry() (*donburi.Entry, bool) {
	entry, ok := c.obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

func (c triggerCollider) HasWarpZone() bool {
	entry, ok := c.entry()
	return ok && entry.HasComponent(components.WarpZone)
}

func (c triggerCollider) WarpZone() *warp.Zone {
	entry, ok := c.entry()
	if !ok {
		return nil
	}
	return &components.WarpZone.Get(entry).Zone
}
