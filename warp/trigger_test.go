package warp

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/automoto/warpzone/config"
	"github.com/yohamta/donburi/features/math"
)

type fakeMover struct {
	moving   bool
	moveOK   bool
	clamps   []math.Vec2
	moves    []Move
	taps     []config.Direction
	tapButns []config.ActionID
}

func (m *fakeMover) IsMoving() bool { return m.moving }

func (m *fakeMover) ClampPositionTo(p math.Vec2) { m.clamps = append(m.clamps, p) }

func (m *fakeMover) Move(d config.Direction, steps int) bool {
	m.moves = append(m.moves, Move{Direction: d, Steps: steps})
	return m.moveOK
}

func (m *fakeMover) TriggerButtons(d config.Direction, b config.ActionID) {
	m.taps = append(m.taps, d)
	m.tapButns = append(m.tapButns, b)
}

type fakeCollider struct {
	zone *Zone
}

func (c fakeCollider) HasWarpZone() bool { return c.zone != nil }
func (c fakeCollider) WarpZone() *Zone   { return c.zone }

type counts struct{ enter, stay, finish int }

func newTestTrigger(m *fakeMover) (*Trigger, *counts, *bytes.Buffer) {
	var buf bytes.Buffer
	tr := NewTrigger(m)
	tr.Logger = log.New(&buf, "", 0)
	tr.LogTransitions = true
	c := &counts{}
	tr.OnEnter.Subscribe(func() { c.enter++ })
	tr.OnStay.Subscribe(func() { c.stay++ })
	tr.OnFinish.Subscribe(func() { c.finish++ })
	return tr, c, &buf
}

func testZone(move Move) fakeCollider {
	return fakeCollider{zone: &Zone{
		Anchor:   Point{X: 10, Y: 5},
		Offset:   math.Vec2{X: 0, Y: 1},
		PostDrop: move,
	}}
}

func TestNewTriggerDefaults(t *testing.T) {
	tr := NewTrigger(&fakeMover{})
	if !tr.IsWarpingEnabled() {
		t.Fatal("warping should be enabled by default")
	}
	if tr.IsWarping() {
		t.Fatal("new trigger should be idle")
	}
}

func TestGateToggle(t *testing.T) {
	tr := NewTrigger(&fakeMover{})
	tr.DisableWarping()
	if tr.IsWarpingEnabled() {
		t.Fatal("DisableWarping should close the gate")
	}
	tr.EnableWarping()
	if !tr.IsWarpingEnabled() {
		t.Fatal("EnableWarping should open the gate")
	}
}

func TestStayClampsToAnchorPlusOffset(t *testing.T) {
	m := &fakeMover{moving: true}
	tr, c, _ := newTestTrigger(m)

	tr.HandleStay(testZone(Move{}))

	if len(m.clamps) != 1 {
		t.Fatalf("expected 1 clamp, got %d", len(m.clamps))
	}
	if got := m.clamps[0]; got.X != 10 || got.Y != 6 {
		t.Errorf("expected clamp to (10,6), got (%v,%v)", got.X, got.Y)
	}
	if !tr.IsWarping() {
		t.Error("stay should start warping")
	}
	if c.stay != 1 {
		t.Errorf("expected 1 stay notification, got %d", c.stay)
	}
}

func TestRepeatedStayTeleportsOnce(t *testing.T) {
	m := &fakeMover{moving: true}
	tr, c, _ := newTestTrigger(m)
	zone := testZone(Move{})

	for i := 0; i < 5; i++ {
		tr.HandleStay(zone)
		tr.Update()
	}

	if len(m.clamps) != 1 {
		t.Errorf("expected exactly 1 teleport, got %d", len(m.clamps))
	}
	if c.stay != 1 {
		t.Errorf("expected 1 stay notification, got %d", c.stay)
	}
}

func TestUpdateClearsWarpingWhenMotionStops(t *testing.T) {
	m := &fakeMover{moving: true}
	tr, _, _ := newTestTrigger(m)

	tr.HandleStay(testZone(Move{}))
	tr.Update()
	if !tr.IsWarping() {
		t.Fatal("should still be warping while the mover moves")
	}

	m.moving = false
	tr.Update()
	if tr.IsWarping() {
		t.Fatal("should be idle once the mover stops")
	}
}

func TestDisableMidWarpDoesNotCancel(t *testing.T) {
	m := &fakeMover{moving: true}
	tr, _, _ := newTestTrigger(m)

	tr.HandleStay(testZone(Move{}))
	tr.DisableWarping()
	tr.Update()
	if !tr.IsWarping() {
		t.Fatal("disabling the gate must not cancel a warp in progress")
	}

	m.moving = false
	tr.Update()
	if tr.IsWarping() {
		t.Fatal("warp should still end when motion stops")
	}

	// New warps are blocked by the closed gate
	tr.HandleStay(testZone(Move{}))
	if tr.IsWarping() || len(m.clamps) != 1 {
		t.Fatal("closed gate should block new warps")
	}
}

func TestDisabledGateIgnoresAllEvents(t *testing.T) {
	m := &fakeMover{}
	tr, c, _ := newTestTrigger(m)
	tr.DisableWarping()
	zone := testZone(Move{Direction: config.DirectionUp, Steps: 2})

	tr.HandleEnter(zone)
	tr.HandleStay(zone)
	tr.HandleExit(zone)

	if *c != (counts{}) {
		t.Errorf("expected no notifications, got %+v", *c)
	}
	if len(m.clamps)+len(m.moves)+len(m.taps) != 0 {
		t.Error("expected no mover calls")
	}
}

func TestPostDropMove(t *testing.T) {
	cases := []struct {
		name      string
		move      Move
		moveOK    bool
		wantTaps  []config.Direction
		wantMoves []Move
		wantWarn  bool
	}{
		{"tap_right", Move{Direction: config.DirectionRight}, true, []config.Direction{config.DirectionRight}, nil, false},
		{"none", Move{Direction: config.DirectionNone}, true, nil, nil, false},
		{"walk_ok", Move{Direction: config.DirectionDown, Steps: 2}, true, nil, []Move{{config.DirectionDown, 2}}, false},
		{"walk_blocked", Move{Direction: config.DirectionUp, Steps: 3}, false, nil, []Move{{config.DirectionUp, 3}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := &fakeMover{moveOK: c.moveOK}
			tr, n, buf := newTestTrigger(m)

			tr.HandleExit(testZone(c.move))

			if len(m.taps) != len(c.wantTaps) {
				t.Fatalf("expected %d taps, got %d", len(c.wantTaps), len(m.taps))
			}
			for i := range c.wantTaps {
				if m.taps[i] != c.wantTaps[i] {
					t.Errorf("tap %d: expected %s, got %s", i, c.wantTaps[i], m.taps[i])
				}
				if m.tapButns[i] != config.ActionNone {
					t.Errorf("tap %d: expected no extra button, got %d", i, m.tapButns[i])
				}
			}
			if len(m.moves) != len(c.wantMoves) {
				t.Fatalf("expected %d moves, got %d", len(c.wantMoves), len(m.moves))
			}
			for i := range c.wantMoves {
				if m.moves[i] != c.wantMoves[i] {
					t.Errorf("move %d: expected %+v, got %+v", i, c.wantMoves[i], m.moves[i])
				}
			}
			warned := strings.Contains(buf.String(), "Warning: warper cannot be moved")
			if warned != c.wantWarn {
				t.Errorf("warning logged = %v, want %v (log: %q)", warned, c.wantWarn, buf.String())
			}
			if n.finish != 1 {
				t.Errorf("finish should fire once, got %d", n.finish)
			}
			if tr.IsWarping() {
				t.Error("exit must not start a warp")
			}
		})
	}
}

func TestExitWhileWarpingIsIgnored(t *testing.T) {
	m := &fakeMover{moving: true, moveOK: true}
	tr, c, _ := newTestTrigger(m)
	zone := testZone(Move{Direction: config.DirectionLeft, Steps: 1})

	tr.HandleStay(zone)
	tr.HandleExit(zone)

	if c.finish != 0 {
		t.Errorf("finish should not fire while warping, got %d", c.finish)
	}
	if len(m.moves) != 0 {
		t.Errorf("post-drop move should not run while warping, got %v", m.moves)
	}
}

func TestFullSequence(t *testing.T) {
	m := &fakeMover{moveOK: true}
	tr, c, _ := newTestTrigger(m)
	zone := testZone(Move{Direction: config.DirectionRight, Steps: 1})

	tr.HandleEnter(zone)
	if tr.IsWarping() {
		t.Fatal("enter must not start a warp")
	}
	tr.HandleStay(zone)
	tr.Update() // mover is idle, warp ends
	tr.HandleExit(zone)

	want := counts{enter: 1, stay: 1, finish: 1}
	if *c != want {
		t.Errorf("expected %+v, got %+v", want, *c)
	}
	if len(m.moves) != 1 {
		t.Errorf("expected post-drop move, got %v", m.moves)
	}
}

func TestColliderWithoutZoneIsIgnored(t *testing.T) {
	m := &fakeMover{}
	tr, c, buf := newTestTrigger(m)
	other := fakeCollider{}

	tr.HandleEnter(other)
	tr.HandleStay(other)
	tr.Update()
	tr.HandleExit(other)
	tr.HandleStay(nil)

	if *c != (counts{}) {
		t.Errorf("expected no notifications, got %+v", *c)
	}
	if tr.IsWarping() {
		t.Error("state should not change")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %q", buf.String())
	}
}

// isWarping is true iff a stay was accepted and the mover has not stopped since.
func TestWarpingTracksAcceptedStay(t *testing.T) {
	type step struct {
		event  string
		moving bool
	}
	seq := []step{
		{"enter", false}, {"stay", true}, {"stay", true}, {"tick", true},
		{"exit", true}, {"tick", false}, {"stay", true}, {"tick", true},
		{"tick", false}, {"exit", false}, {"enter", false},
	}

	m := &fakeMover{moveOK: true}
	tr, _, _ := newTestTrigger(m)
	zone := testZone(Move{})
	model := false

	for i, s := range seq {
		m.moving = s.moving
		switch s.event {
		case "enter":
			tr.HandleEnter(zone)
		case "stay":
			if !model {
				model = true
			}
			tr.HandleStay(zone)
		case "exit":
			tr.HandleExit(zone)
		case "tick":
			if model && !s.moving {
				model = false
			}
			tr.Update()
		}
		if tr.IsWarping() != model {
			t.Fatalf("step %d (%s): IsWarping = %v, want %v", i, s.event, tr.IsWarping(), model)
		}
	}
}
