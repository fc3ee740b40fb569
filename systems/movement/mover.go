// Package movement implements grid movement for actors and exposes it to
// the warp trigger as a warp.Mover.
package movement

import (
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GridMover drives the GridMover and Object components of one entity
type GridMover struct {
	entry *donburi.Entry
}

func NewGridMover(entry *donburi.Entry) *GridMover {
	return &GridMover{entry: entry}
}

func (m *GridMover) IsMoving() bool {
	mover := components.GridMover.Get(m.entry)
	return mover.Moving || mover.Queued > 0
}

// ClampPositionTo snaps the actor to p and drops any step in progress
func (m *GridMover) ClampPositionTo(p math.Vec2) {
	mover := components.GridMover.Get(m.entry)
	mover.Position = p
	mover.From = p
	mover.To = p
	mover.Step = nil
	mover.Moving = false
	mover.Queued = 0
	SyncObject(m.entry)
}

// Move walks steps cells in direction. The whole path is checked up front;
// if any cell is blocked nothing moves and false is returned. A move
// requested during a step starts when the current step ends.
func (m *GridMover) Move(direction cfg.Direction, steps int) bool {
	if direction == cfg.DirectionNone || steps <= 0 {
		return false
	}

	mover := components.GridMover.Get(m.entry)
	obj := components.Object.Get(m.entry)

	origin := mover.Position
	if mover.Moving {
		origin = mover.To
	}
	dx, dy := direction.Delta()
	for i := 1; i <= steps; i++ {
		target := math.Vec2{
			X: origin.X + float64(dx*i)*cfg.Grid.CellSize,
			Y: origin.Y + float64(dy*i)*cfg.Grid.CellSize,
		}
		if Blocked(obj.Object, target) {
			return false
		}
	}

	mover.Facing = direction
	mover.QueuedDir = direction
	if mover.Moving {
		mover.Queued = steps
		return true
	}
	mover.Queued = steps - 1
	startStep(mover, direction)
	return true
}

// TriggerButtons presses direction for one frame, as if the player tapped it
func (m *GridMover) TriggerButtons(direction cfg.Direction, button cfg.ActionID) {
	input := components.Input.Get(m.entry)
	if action := direction.Action(); action != cfg.ActionNone {
		input.Scripted[action] = true
	}
	if button != cfg.ActionNone {
		input.Scripted[button] = true
	}
}

// Face turns the actor without moving it
func (m *GridMover) Face(direction cfg.Direction) {
	if direction == cfg.DirectionNone {
		return
	}
	components.GridMover.Get(m.entry).Facing = direction
}

// Advance moves the current step forward by dt seconds and chains queued steps
func Advance(entry *donburi.Entry, dt float32) {
	mover := components.GridMover.Get(entry)
	if !mover.Moving || mover.Step == nil {
		return
	}

	progress, finished := mover.Step.Update(dt)
	t := float64(progress)
	mover.Position = math.Vec2{
		X: mover.From.X + (mover.To.X-mover.From.X)*t,
		Y: mover.From.Y + (mover.To.Y-mover.From.Y)*t,
	}

	if finished {
		mover.Position = mover.To
		mover.Moving = false
		mover.Step = nil
		if mover.Queued > 0 {
			mover.Queued--
			startStep(mover, mover.QueuedDir)
		}
	}

	SyncObject(entry)
}

func startStep(mover *components.GridMoverData, direction cfg.Direction) {
	dx, dy := direction.Delta()
	mover.From = mover.Position
	mover.To = math.Vec2{
		X: mover.Position.X + float64(dx)*cfg.Grid.CellSize,
		Y: mover.Position.Y + float64(dy)*cfg.Grid.CellSize,
	}
	mover.Step = gween.New(0, 1, cfg.Grid.StepDuration, ease.Linear)
	mover.Moving = true
	mover.Facing = direction
}

// Inset is the gap between the cell corner and the actor's collision box
func Inset() float64 {
	return (cfg.Grid.CellSize - cfg.Grid.ActorSize) / 2
}

// SyncObject moves the collision object to the mover position
func SyncObject(entry *donburi.Entry) {
	mover := components.GridMover.Get(entry)
	obj := components.Object.Get(entry)
	obj.X = mover.Position.X + Inset()
	obj.Y = mover.Position.Y + Inset()
	obj.Update()
}

// Blocked reports whether obj would overlap a solid if its cell were at cell
func Blocked(obj *resolv.Object, cell math.Vec2) bool {
	dx := cell.X + Inset() - obj.X
	dy := cell.Y + Inset() - obj.Y
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if Overlaps(cell.X+Inset(), cell.Y+Inset(), obj.W, obj.H, solid) {
			return true
		}
	}
	return false
}

// Overlaps is a strict AABB test; touching edges do not overlap
func Overlaps(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W && x+w > other.X &&
		y < other.Y+other.H && y+h > other.Y
}
