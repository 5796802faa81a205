package geo

import (
	"math"

	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/util"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Sphere solves geodesic problems on a sphere of radius RadiusKm.
type Sphere struct {
	RadiusKm float64
}

func NewSphere(radiusKm float64) Sphere {
	return Sphere{RadiusKm: radiusKm}
}

func (s Sphere) Name() string {
	return "sphere"
}

// Destination follows the great circle leaving (lat, lon) at bearingDeg for distanceKm.
func (s Sphere) Destination(lat, lon, bearingDeg, distanceKm float64) (float64, float64) {
	start := s2.LatLngFromDegrees(lat, lon)
	delta := distanceKm / s.RadiusKm
	theta := (s1.Angle(bearingDeg) * s1.Degree).Radians()

	phi1 := start.Lat.Radians()
	lambda1 := start.Lng.Radians()

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(util.Clamp(sinPhi2, -1, 1))

	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*math.Sin(phi2)
	lambda2 := lambda1 + math.Atan2(y, x)

	end := s2.LatLng{Lat: s1.Angle(phi2), Lng: s1.Angle(lambda2)}.Normalized()
	return end.Lat.Degrees(), end.Lng.Degrees()
}

// Distance is the great-circle distance in km.
func (s Sphere) Distance(a, b datastructure.Coordinate) float64 {
	pa := s2.LatLngFromDegrees(a.Lat, a.Lon)
	pb := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return pa.Distance(pb).Radians() * s.RadiusKm
}

// Bearing is the initial great-circle bearing at a toward b, in [0, 360).
func (s Sphere) Bearing(a, b datastructure.Coordinate) float64 {
	return InitialBearing(a.Lat, a.Lon, b.Lat, b.Lon)
}

// Interpolate returns the point at fraction f of the great circle from a to b.
func (s Sphere) Interpolate(a, b datastructure.Coordinate, f float64) datastructure.Coordinate {
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	ll := s2.LatLngFromPoint(s2.Interpolate(f, pa, pb))
	return datastructure.NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}
