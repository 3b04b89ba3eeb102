package systems

import (
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/shared/geomath"
)

// screenPosition converts a geographic point to screen pixels for the
// current camera.
func screenPosition(camera *components.CameraData, lat, lon float64) (float64, float64) {
	cx, cy := geomath.Project(camera.CenterLat, camera.CenterLon, camera.Zoom)
	px, py := geomath.Project(lat, lon, camera.Zoom)
	return px - cx + float64(cfg.C.Width)/2, py - cy + float64(cfg.C.Height)/2
}

// geoPosition converts screen pixels back to a geographic point.
func geoPosition(camera *components.CameraData, x, y float64) (lat, lon float64) {
	cx, cy := geomath.Project(camera.CenterLat, camera.CenterLon, camera.Zoom)
	px := cx + x - float64(cfg.C.Width)/2
	py := cy + y - float64(cfg.C.Height)/2
	return geomath.Unproject(px, py, camera.Zoom)
}
