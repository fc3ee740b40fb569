package systems

import (
	"bytes"
	"log"
	"testing"

	"github.com/automoto/warpzone/assets"
	"github.com/automoto/warpzone/components"
	cfg "github.com/automoto/warpzone/config"
	"github.com/automoto/warpzone/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// memStore keeps save data in memory
type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	prev := store
	m := &memStore{}
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

type testWorld struct {
	ecs    *ecs.ECS
	warper *donburi.Entry
	held   map[cfg.ActionID]bool
	kinds  []components.WarpEventKind
	logBuf *bytes.Buffer
}

// newTestWorld loads the demo level and puts a warper at (x, y). Input is
// driven by held instead of the keyboard.
func newTestWorld(t *testing.T, x, y float64) *testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateGate)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateTriggers)
	e.AddSystem(UpdateWarp)
	e.AddSystem(UpdateCamera)
	SubscribeWarpEvents(e.World)

	levelEntry, err := factory.CreateLevel(e, assets.LevelFS, cfg.Level.Default)
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	factory.CreateSpace(e, level.Width, level.Height, cfg.Grid.SpaceCell, cfg.Grid.SpaceCell)
	if err := factory.PopulateLevel(e, level); err != nil {
		t.Fatalf("PopulateLevel: %v", err)
	}
	factory.CreateHUD(e)
	factory.CreateCamera(e, x, y)

	w := &testWorld{
		ecs:    e,
		warper: factory.CreateWarper(e, x, y),
		held:   map[cfg.ActionID]bool{},
		logBuf: &bytes.Buffer{},
	}
	components.WarpTrigger.Get(w.warper).Logger = log.New(w.logBuf, "", 0)
	components.WarpEvent.Subscribe(e.World, func(_ donburi.World, ev components.WarpEventData) {
		w.kinds = append(w.kinds, ev.Kind)
	})
	return w
}

func (w *testWorld) tick() {
	pollInput(components.Input.Get(w.warper), func(a cfg.ActionID) bool { return w.held[a] })
	w.ecs.Update()
}

func (w *testWorld) ticks(n int) {
	for i := 0; i < n; i++ {
		w.tick()
	}
}

// tap holds action for a single tick
func (w *testWorld) tap(action cfg.ActionID) {
	w.held[action] = true
	w.tick()
	delete(w.held, action)
}

func (w *testWorld) position() (float64, float64) {
	mover := components.GridMover.Get(w.warper)
	return mover.Position.X, mover.Position.Y
}

func (w *testWorld) hud() *components.WarpHUDData {
	return getWarpHUD(w.ecs.World)
}
