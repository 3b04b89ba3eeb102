package factory

import (
	"github.com/skyloft/skywatch/archetypes"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		CenterLat: cfg.Camera.InitialLat,
		CenterLon: cfg.Camera.InitialLon,
		Zoom:      cfg.Camera.InitialZoom,
	})
}
