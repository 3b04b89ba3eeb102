package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/fonts"
	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/skyloft/skywatch/smoothing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBasemap fills the background and draws a lat/lon graticule sized to
// the current zoom.
func DrawBasemap(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Basemap.Background)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	step := graticuleStep(camera.Zoom)
	maxLat, minLon := geoPosition(camera, 0, 0)
	minLat, maxLon := geoPosition(camera, float64(cfg.C.Width), float64(cfg.C.Height))

	smallFont := fonts.Small.Get()

	for lon := math.Floor(minLon/step) * step; lon <= maxLon+step; lon += step {
		x, _ := screenPosition(camera, camera.CenterLat, lon)
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(cfg.C.Height), 1, cfg.Basemap.LineColor, false)
		text.Draw(screen, formatDegrees(lon, "E", "W"), smallFont, int(x)+3, 12, cfg.Basemap.LabelColor)
	}

	for lat := math.Floor(minLat/step) * step; lat <= maxLat+step; lat += step {
		if lat >= 85 || lat <= -85 {
			continue
		}
		_, y := screenPosition(camera, lat, camera.CenterLon)
		vector.StrokeLine(screen, 0, float32(y), float32(cfg.C.Width), float32(y), 1, cfg.Basemap.LineColor, false)
		text.Draw(screen, formatDegrees(lat, "N", "S"), smallFont, 3, int(y)-3, cfg.Basemap.LabelColor)
	}
}

// DrawTracks renders every placed marker at its smoothed position with a
// heading indicator and callsign label.
func DrawTracks(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	smallFont := fonts.Small.Get()

	components.Track.Each(e.World, func(entry *donburi.Entry) {
		track := components.Track.Get(entry)
		marker := components.Marker.Get(entry)
		if !marker.Placed {
			return
		}

		x, y := screenPosition(camera, marker.Lat, marker.Lon)
		if x < -20 || y < -20 || x > float64(cfg.C.Width)+20 || y > float64(cfg.C.Height)+20 {
			return
		}

		sm := components.Smoother.Get(entry)
		clr := cfg.Track.KindColors[track.Kind]
		if sm.Engine.State() == smoothing.StateStalled {
			clr = cfg.Track.StalledColor
		}
		if track.Selected {
			clr = cfg.Track.SelectedColor
		}

		fx, fy := float32(x), float32(y)
		vector.DrawFilledCircle(screen, fx, fy, cfg.Track.MarkerRadius, clr, true)

		// Balloons drift; a heading needle would be noise.
		if track.Kind != netconfig.KindBalloon {
			rad := marker.Heading * math.Pi / 180
			dx := float32(math.Sin(rad)) * cfg.Track.HeadingLineLen
			dy := float32(-math.Cos(rad)) * cfg.Track.HeadingLineLen
			vector.StrokeLine(screen, fx, fy, fx+dx, fy+dy, 2, clr, true)
		}

		label := track.Callsign
		text.Draw(screen, label, smallFont, int(x)-len(label)*3, int(y)-cfg.Track.LabelOffsetY, cfg.White)
	})
}

func graticuleStep(zoom float64) float64 {
	switch {
	case zoom < 4:
		return 30
	case zoom < 6:
		return 10
	case zoom < 8:
		return 5
	case zoom < 10:
		return 1
	case zoom < 12:
		return 0.5
	}
	return 0.1
}

func formatDegrees(v float64, pos, neg string) string {
	suffix := pos
	if v < 0 {
		suffix = neg
		v = -v
	}
	return fmt.Sprintf("%.1f°%s", v, suffix)
}
