// Package latlong converts a decoded world Location into in-game
// longitude/latitude, grounded on original_source/src/ark.rs's Ark struct.
package latlong

import "ark-save-parser/ark"

// Projection holds the per-map linear conversion from world units to the
// map's lat/long grid.
type Projection struct {
	XOffset, XDivisor float32
	YOffset, YDivisor float32
}

// Island is the default projection for The Island map, promoted here from
// original_source's commented-out THE_ISLAND constant.
var Island = Projection{XOffset: 50, XDivisor: 8000, YOffset: 50, YDivisor: 8000}

// Longitude converts loc.X to the map's longitude axis.
func (p Projection) Longitude(loc ark.Location) float32 {
	return p.XOffset + loc.X/p.XDivisor
}

// Latitude converts loc.Y to the map's latitude axis.
func (p Projection) Latitude(loc ark.Location) float32 {
	return p.YOffset + loc.Y/p.YDivisor
}
