package components

import (
	"github.com/automoto/warpzone/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GridMoverData is the grid movement state of an actor. Position is the
// top-left corner of the cell the actor is drawn at.
type GridMoverData struct {
	Position math.Vec2
	From     math.Vec2
	To       math.Vec2
	Step     *gween.Tween // Progress 0..1 of the current step, nil when idle
	Moving   bool
	Facing   config.Direction

	// Steps still to walk after the current one
	Queued    int
	QueuedDir config.Direction
}

var GridMover = donburi.NewComponentType[GridMoverData]()
