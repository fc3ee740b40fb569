package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	WarpZone = donburi.NewTag().SetName("WarpZone")
	DropZone = donburi.NewTag().SetName("DropZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvWarpZone = "warpzone"
	ResolvDropZone = "dropzone"
)
