package components

import "github.com/yohamta/donburi"

// WarpHUDData is a singleton holding the last warp notification shown on screen
type WarpHUDData struct {
	Message string
	Timer   int // Frames left to show Message
	Warps   int // Completed warps this session
}

var WarpHUD = donburi.NewComponentType[WarpHUDData]()
