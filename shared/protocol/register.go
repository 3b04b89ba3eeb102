package protocol

import (
	"github.com/leap-fish/necs/esync"
	"github.com/skyloft/skywatch/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTrack     uint = 10
	SyncIDNetTrackInfo uint = 11
)

// RegisterComponents registers all network components with necs for
// serialization. Both server and viewer must call this before any network
// operation.
//
// No interp functions are registered: smoothing happens viewer-side in the
// smoothing package, keyed on local arrival times rather than on snapshot
// pairs.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetTrack,
		netcomponents.NetTrackData{},
		netcomponents.NetTrack,
	); err != nil {
		return err
	}

	return esync.RegisterComponent(
		SyncIDNetTrackInfo,
		netcomponents.NetTrackInfoData{},
		netcomponents.NetTrackInfo,
	)
}
