package movement_test

import (
	"testing"

	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems/factory"
	"github.com/automoto/warpzone/systems/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newRoom is a 10x6 cell room with a wall column at x=5 and a warper at (1,1)
func newRoom(t *testing.T) (*donburi.Entry, *movement.GridMover) {
	t.Helper()
	cell := cfg.Grid.CellSize
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(10*cell), int(6*cell), cfg.Grid.SpaceCell, cfg.Grid.SpaceCell)
	factory.CreateWall(e, 5*cell, 0, cell, 6*cell)
	warper := factory.CreateWarper(e, cell, cell)
	return warper, movement.NewGridMover(warper)
}

func settle(entry *donburi.Entry) {
	dt := float32(1) / float32(cfg.Grid.TickRate)
	for i := 0; i < 10*cfg.Grid.TickRate; i++ {
		movement.Advance(entry, dt)
	}
}

func position(entry *donburi.Entry) math.Vec2 {
	return components.GridMover.Get(entry).Position
}

func TestMove(t *testing.T) {
	cell := cfg.Grid.CellSize
	cases := []struct {
		name      string
		direction cfg.Direction
		steps     int
		wantOK    bool
		want      math.Vec2
	}{
		{"free_path", cfg.DirectionRight, 3, true, math.Vec2{X: 4 * cell, Y: cell}},
		{"path_into_wall", cfg.DirectionRight, 4, false, math.Vec2{X: cell, Y: cell}},
		{"down", cfg.DirectionDown, 2, true, math.Vec2{X: cell, Y: 3 * cell}},
		{"zero_steps", cfg.DirectionDown, 0, false, math.Vec2{X: cell, Y: cell}},
		{"no_direction", cfg.DirectionNone, 2, false, math.Vec2{X: cell, Y: cell}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			warper, mover := newRoom(t)
			if ok := mover.Move(c.direction, c.steps); ok != c.wantOK {
				t.Fatalf("Move(%s, %d) = %v, want %v", c.direction, c.steps, ok, c.wantOK)
			}
			if mover.IsMoving() != c.wantOK {
				t.Errorf("IsMoving = %v, want %v", mover.IsMoving(), c.wantOK)
			}
			settle(warper)
			if got := position(warper); got != c.want {
				t.Errorf("expected (%v,%v), got (%v,%v)", c.want.X, c.want.Y, got.X, got.Y)
			}
			if mover.IsMoving() {
				t.Error("mover should be idle after settling")
			}
		})
	}
}

func TestMoveDuringStepIsQueued(t *testing.T) {
	cell := cfg.Grid.CellSize
	warper, mover := newRoom(t)

	if !mover.Move(cfg.DirectionRight, 1) {
		t.Fatal("first move should start")
	}
	movement.Advance(warper, 0.01)

	// Checked from the cell the current step ends in
	if !mover.Move(cfg.DirectionRight, 2) {
		t.Fatal("queued move should be accepted")
	}
	if mover.Move(cfg.DirectionRight, 3) {
		t.Fatal("a move into the wall from the step target should be refused")
	}

	settle(warper)
	if got := position(warper); got.X != 4*cell || got.Y != cell {
		t.Errorf("expected (%v,%v), got (%v,%v)", 4*cell, cell, got.X, got.Y)
	}
}

func TestClampCancelsStep(t *testing.T) {
	warper, mover := newRoom(t)
	mover.Move(cfg.DirectionDown, 3)
	movement.Advance(warper, 0.05)

	target := math.Vec2{X: 7 * cfg.Grid.CellSize, Y: 2 * cfg.Grid.CellSize}
	mover.ClampPositionTo(target)

	if mover.IsMoving() {
		t.Fatal("clamp should stop the mover")
	}
	settle(warper)
	if got := position(warper); got != target {
		t.Errorf("expected to stay at (%v,%v), got (%v,%v)", target.X, target.Y, got.X, got.Y)
	}
	obj := components.Object.Get(warper)
	if obj.X != target.X+movement.Inset() || obj.Y != target.Y+movement.Inset() {
		t.Errorf("collision object not synced: (%v,%v)", obj.X, obj.Y)
	}
}

func TestTriggerButtonsQueuesScriptedPress(t *testing.T) {
	warper, mover := newRoom(t)
	mover.TriggerButtons(cfg.DirectionLeft, cfg.ActionInteract)

	input := components.Input.Get(warper)
	if !input.Scripted[cfg.ActionMoveLeft] || !input.Scripted[cfg.ActionInteract] {
		t.Errorf("expected scripted left and interact, got %v", input.Scripted)
	}
	if position(warper) != (math.Vec2{X: cfg.Grid.CellSize, Y: cfg.Grid.CellSize}) {
		t.Error("a tap must not move the warper directly")
	}
}
