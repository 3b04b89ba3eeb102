package netcomponents

import (
	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetTrackData is one position report for a tracked entity. Heading is
// degrees clockwise from north in [0, 360). SpeedKn is knots; the viewer
// only displays it, the smoothing engine ignores it.
type NetTrackData struct {
	Lat     float64
	Lon     float64
	Heading float64
	SpeedKn float64
}

var NetTrack = donburi.NewComponentType[NetTrackData]()

// NetTrackInfoData carries the static identity of a track.
type NetTrackInfoData struct {
	Callsign string
	Kind     netconfig.TrackKind
}

var NetTrackInfo = donburi.NewComponentType[NetTrackInfoData]()
