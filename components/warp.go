package components

import (
	"github.com/automoto/warpzone/warp"
	"github.com/yohamta/donburi"
)

// WarpTriggerData is carried by entities that can be warped
type WarpTriggerData struct {
	*warp.Trigger
}

var WarpTrigger = donburi.NewComponentType[WarpTriggerData]()

// WarpZoneData is the destination descriptor attached to a warp zone volume
type WarpZoneData struct {
	Name     string
	DropZone string // Name of the drop zone the anchor was resolved from
	Zone     warp.Zone
}

var WarpZone = donburi.NewComponentType[WarpZoneData]()

// DropZoneData marks a named drop-off point
type DropZoneData struct {
	Name string
}

var DropZone = donburi.NewComponentType[DropZoneData]()
