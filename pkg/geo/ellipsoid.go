package geo

import (
	"math"

	"lintang/randcoord/pkg/datastructure"

	"github.com/tidwall/geodesic"
)

// Ellipsoid solves geodesic problems on the WGS84 ellipsoid (Karney's algorithm).
type Ellipsoid struct {
	e *geodesic.Ellipsoid
}

func NewWGS84() Ellipsoid {
	return Ellipsoid{e: geodesic.WGS84}
}

func (Ellipsoid) Name() string {
	return "ellipsoid"
}

func (el Ellipsoid) Destination(lat, lon, bearingDeg, distanceKm float64) (float64, float64) {
	var lat2, lon2 float64
	el.e.Direct(lat, lon, bearingDeg, distanceKm*1000, &lat2, &lon2, nil)
	return lat2, lon2
}

// Distance is the geodesic distance in km.
func (el Ellipsoid) Distance(a, b datastructure.Coordinate) float64 {
	var s12 float64
	el.e.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12 / 1000
}

// Bearing is the forward azimuth at a of the geodesic from a to b, in [0, 360).
func (el Ellipsoid) Bearing(a, b datastructure.Coordinate) float64 {
	var azi1 float64
	el.e.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, nil, &azi1, nil)
	return math.Mod(azi1+360.0, 360.0)
}
