package tags

import "github.com/yohamta/donburi"

var (
	Track = donburi.NewTag().SetName("Track")
)

// Resolv tags for cursor picking
const (
	ResolvMarker = "marker"
	ResolvCursor = "cursor"
)
