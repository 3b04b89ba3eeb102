// Package geomath holds the coordinate math shared by the viewer and the
// feed simulation: Web Mercator projection and simple position stepping.
package geomath

import "math"

const (
	earthRadius = 6378137.0 // WGS84 equatorial radius, meters
	originShift = math.Pi * earthRadius
	tileSize    = 256.0
)

// Project converts latitude/longitude in degrees to Web Mercator pixel
// coordinates at the given (fractional) zoom level. Pixel y grows
// southward, matching screen coordinates.
func Project(lat, lon, zoom float64) (px, py float64) {
	x := lon * originShift / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * originShift / 180

	scale := math.Pow(2, zoom)
	px = (x + originShift) / (2 * originShift) * tileSize * scale
	py = (originShift - y) / (2 * originShift) * tileSize * scale
	return px, py
}

// Unproject is the inverse of Project.
func Unproject(px, py, zoom float64) (lat, lon float64) {
	scale := math.Pow(2, zoom)
	x := px/(tileSize*scale)*2*originShift - originShift
	y := originShift - py/(tileSize*scale)*2*originShift

	lon = x / originShift * 180
	lat = y / originShift * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	return lat, lon
}

// Destination steps from a point along a heading (degrees clockwise from
// north) by a ground distance in meters. Equirectangular approximation;
// fine for the sub-kilometer steps the simulation takes.
func Destination(lat, lon, headingDeg, meters float64) (float64, float64) {
	rad := headingDeg * math.Pi / 180
	dLat := meters * math.Cos(rad) / 111320.0
	dLon := meters * math.Sin(rad) / (111320.0 * math.Cos(lat*math.Pi/180))
	return lat + dLat, lon + dLon
}

// NormalizeHeading wraps a heading into [0, 360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// KnotsToMetersPerSecond converts speed over ground.
func KnotsToMetersPerSecond(kn float64) float64 { return kn * 0.514444 }
