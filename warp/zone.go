package warp

import (
	"github.com/automoto/warpzone/config"
	"github.com/yohamta/donburi/features/math"
)

// Anchor is the drop-off point of a warp zone. It is read at the moment of
// the warp, so anchors backed by moving objects are honored.
type Anchor interface {
	Position() math.Vec2
}

// Point is a fixed anchor
type Point math.Vec2

func (p Point) Position() math.Vec2 {
	return math.Vec2(p)
}

// Move is a scripted grid move
type Move struct {
	Direction config.Direction
	Steps     int
}

// Zone describes where a warp zone drops the warper and what it does next
type Zone struct {
	Anchor   Anchor
	Offset   math.Vec2
	PostDrop Move
}

// Destination is the anchor position plus the offset
func (z *Zone) Destination() math.Vec2 {
	p := z.Anchor.Position()
	return math.Vec2{X: p.X + z.Offset.X, Y: p.Y + z.Offset.Y}
}

// Collider is the other object of a trigger callback. A collider carries at
// most one zone; HasWarpZone must be checked before WarpZone.
type Collider interface {
	HasWarpZone() bool
	WarpZone() *Zone
}
