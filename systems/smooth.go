package systems

import (
	"github.com/skyloft/skywatch/smoothing"
	"github.com/yohamta/donburi/ecs"
)

// NewSmoothingSystem returns the update system that pumps the shared frame
// driver: every render clock registered with it (one per track marker,
// plus the camera's follow clock) samples its engine once per frame. This
// runs every frame regardless of whether new reports arrived, so motion
// between two already-known samples stays smooth while the feed is quiet.
func NewSmoothingSystem(driver *smoothing.TickDriver) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		driver.Tick()
	}
}
