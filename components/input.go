package components

import (
	cfg "github.com/automoto/warpzone/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Scripted presses are merged into Current for exactly one frame.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Scripted [cfg.ActionCount]bool
}

func (i *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[a],
		JustPressed:  i.Current[a] && !i.Previous[a],
		JustReleased: !i.Current[a] && i.Previous[a],
	}
}

var Input = donburi.NewComponentType[InputData]()
