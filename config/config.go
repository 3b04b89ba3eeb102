package config

import (
	"image/color"

	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all viewer draw systems register on.
const Default ecs.LayerID = 0

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains map viewport behavior configuration
type CameraConfig struct {
	InitialLat  float64
	InitialLon  float64
	InitialZoom float64

	MinZoom float64
	MaxZoom float64

	ZoomStep       float64 // zoom change per wheel notch
	ZoomTweenSecs  float32 // eased zoom duration
	KeyPanPixels   float64 // arrow-key pan per frame, screen pixels
	FollowHotkey   string  // shown in the HUD hint line
	UnfollowHotkey string
}

// TrackConfig contains marker rendering and picking configuration
type TrackConfig struct {
	MarkerRadius   float32 // circle radius in pixels
	HeadingLineLen float32 // length of the heading indicator line
	LabelOffsetY   int     // label lift above the marker
	PickSize       float64 // side of the square used for cursor picking

	KindColors    map[netconfig.TrackKind]color.RGBA
	SelectedColor color.RGBA
	StalledColor  color.RGBA
}

// HUDConfig contains status line configuration
type HUDConfig struct {
	Margin     int
	LineHeight int
	TextColor  color.RGBA
	HintColor  color.RGBA
}

// BasemapConfig contains graticule rendering configuration
type BasemapConfig struct {
	Background color.RGBA
	LineColor  color.RGBA
	LabelColor color.RGBA
}

// NetConfig contains viewer networking defaults
type NetConfig struct {
	DefaultServerAddress string
	ClientName           string
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey        = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// Global configuration instances
var C *Config
var Camera CameraConfig
var Track TrackConfig
var HUD HUDConfig
var Basemap BasemapConfig
var Net NetConfig

func init() {
	C = &Config{
		Width:  1024,
		Height: 640,
		Title:  "skywatch",
	}

	Camera = CameraConfig{
		// Upper Rhine valley, a busy spot for both gliders and balloons.
		InitialLat:  48.3,
		InitialLon:  7.8,
		InitialZoom: 9,

		MinZoom: 3,
		MaxZoom: 14,

		ZoomStep:       0.5,
		ZoomTweenSecs:  0.25,
		KeyPanPixels:   6,
		FollowHotkey:   "F",
		UnfollowHotkey: "Esc",
	}

	Track = TrackConfig{
		MarkerRadius:   5,
		HeadingLineLen: 12,
		LabelOffsetY:   12,
		PickSize:       14,

		KindColors: map[netconfig.TrackKind]color.RGBA{
			netconfig.KindAircraft: {R: 255, G: 220, B: 60, A: 255},
			netconfig.KindBalloon:  {R: 235, G: 110, B: 190, A: 255},
			netconfig.KindGlider:   {R: 120, G: 220, B: 255, A: 255},
		},
		SelectedColor: BrightGreen,
		StalledColor:  Grey,
	}

	HUD = HUDConfig{
		Margin:     4,
		LineHeight: 14,
		TextColor:  LightGreen,
		HintColor:  Grey,
	}

	Basemap = BasemapConfig{
		Background: color.RGBA{R: 12, G: 16, B: 26, A: 255},
		LineColor:  color.RGBA{R: 34, G: 42, B: 58, A: 255},
		LabelColor: color.RGBA{R: 70, G: 80, B: 100, A: 255},
	}

	Net = NetConfig{
		DefaultServerAddress: "localhost:7373",
		ClientName:           "viewer",
	}
}
