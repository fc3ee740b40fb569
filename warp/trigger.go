// Package warp implements the warp trigger carried by actors that can be
// teleported by warp zones.
//
// A Trigger is driven by three collision callbacks (HandleEnter, HandleStay,
// HandleExit) and one per-tick Update. The first stay tick inside a zone
// clamps the warper to the zone's drop position and marks the trigger as
// warping; the trigger goes back to idle once the mover stops. Leaving the
// zone while idle runs the zone's post-drop move.
package warp

import (
	"log"

	"github.com/automoto/warpzone/config"
	"github.com/yohamta/donburi/features/math"
)

// Mover is the movement controller of the warper
type Mover interface {
	IsMoving() bool
	ClampPositionTo(p math.Vec2)
	// Move walks steps cells in direction. False means the warper is blocked.
	Move(direction config.Direction, steps int) bool
	// TriggerButtons presses direction (and button) for a single frame.
	TriggerButtons(direction config.Direction, button config.ActionID)
}

// Trigger holds the warp state of a single warper
type Trigger struct {
	OnEnter  Signal
	OnStay   Signal
	OnFinish Signal

	// Logger receives transition logs and warnings. Defaults to log.Default().
	Logger *log.Logger
	// LogTransitions enables the enter/exit log lines.
	LogTransitions bool

	mover          Mover
	warpingEnabled bool
	isWarping      bool
}

func NewTrigger(mover Mover) *Trigger {
	return &Trigger{
		Logger:         log.Default(),
		mover:          mover,
		warpingEnabled: true,
	}
}

func (t *Trigger) IsWarpingEnabled() bool {
	return t.warpingEnabled
}

func (t *Trigger) EnableWarping() {
	t.warpingEnabled = true
}

// DisableWarping closes the gate for new warps. A warp in progress is not cancelled.
func (t *Trigger) DisableWarping() {
	t.warpingEnabled = false
}

func (t *Trigger) IsWarping() bool {
	return t.isWarping
}

// Update must run every tick. It ends the current warp once the mover stops.
func (t *Trigger) Update() {
	if t.isWarping && !t.mover.IsMoving() {
		t.isWarping = false
	}
}

func (t *Trigger) accepts(other Collider) bool {
	return other != nil && other.HasWarpZone() && t.warpingEnabled && !t.isWarping
}

func (t *Trigger) HandleEnter(other Collider) {
	if !t.accepts(other) {
		return
	}

	t.logf("[warp] enter")
	t.OnEnter.Emit()
}

// HandleStay is called every tick while overlapping. Only the first accepted
// stay warps; the warping state suppresses the rest.
func (t *Trigger) HandleStay(other Collider) {
	if !t.accepts(other) {
		return
	}

	t.isWarping = true
	t.warpToDropStart(other.WarpZone())
	t.OnStay.Emit()
}

// HandleExit finishes a warp. Exiting while still warping is ignored, so the
// post-drop move only runs if the warp completed inside the volume.
func (t *Trigger) HandleExit(other Collider) {
	if !t.accepts(other) {
		return
	}

	t.logf("[warp] exit")
	t.moveToDropEnd(other.WarpZone())
	t.OnFinish.Emit()
}

func (t *Trigger) warpToDropStart(zone *Zone) {
	t.mover.ClampPositionTo(zone.Destination())
}

func (t *Trigger) moveToDropEnd(zone *Zone) {
	move := zone.PostDrop
	if move.Steps == 0 {
		if move.Direction != config.DirectionNone {
			t.mover.TriggerButtons(move.Direction, config.ActionNone)
		}
		return
	}

	if !t.mover.Move(move.Direction, move.Steps) {
		t.logger().Printf("[warp] Warning: warper cannot be moved %s %d steps", move.Direction, move.Steps)
	}
}

func (t *Trigger) logf(format string, args ...any) {
	if t.LogTransitions {
		t.logger().Printf(format, args...)
	}
}

func (t *Trigger) logger() *log.Logger {
	if t.Logger == nil {
		return log.Default()
	}
	return t.Logger
}
