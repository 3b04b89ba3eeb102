package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/skyloft/skywatch/components"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewHUDSystem returns a renderer for the status lines. status is supplied
// by the scene, which knows the connection state.
func NewHUDSystem(status func() string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		smallFont := fonts.Small.Get()

		trackCount := 0
		components.Track.Each(e.World, func(_ *donburi.Entry) {
			trackCount++
		})

		y := cfg.HUD.Margin + 10
		info := fmt.Sprintf("%s - tracks: %d", status(), trackCount)
		text.Draw(screen, info, smallFont, cfg.HUD.Margin, y, cfg.HUD.TextColor)

		if entry := selectedTrack(e); entry != nil {
			track := components.Track.Get(entry)
			sm := components.Smoother.Get(entry)
			y += cfg.HUD.LineHeight
			detail := fmt.Sprintf("%s  %s  %.0f kn  %s  delay %dms  buffer %d",
				track.Callsign, track.Kind, track.SpeedKn,
				sm.Engine.State(), sm.Engine.RenderDelay().Milliseconds(), sm.Engine.BufferLen())
			text.Draw(screen, detail, smallFont, cfg.HUD.Margin, y, cfg.HUD.TextColor)
		}

		hint := fmt.Sprintf("click: select+follow   %s: follow   %s: stop   drag/arrows: pan   wheel: zoom",
			cfg.Camera.FollowHotkey, cfg.Camera.UnfollowHotkey)
		text.Draw(screen, hint, smallFont, cfg.HUD.Margin, cfg.C.Height-cfg.HUD.Margin, cfg.HUD.HintColor)
	}
}
