package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type WarpEventKind int

const (
	WarpEntered WarpEventKind = iota
	WarpStarted
	WarpFinished
)

func (k WarpEventKind) String() string {
	switch k {
	case WarpEntered:
		return "entered"
	case WarpStarted:
		return "started"
	case WarpFinished:
		return "finished"
	}
	return "unknown"
}

// WarpEventData is published for every warp trigger notification and
// delivered when the warp system processes events at the end of the tick.
type WarpEventData struct {
	Warper *donburi.Entry
	Kind   WarpEventKind
}

var WarpEvent = events.NewEventType[WarpEventData]()
