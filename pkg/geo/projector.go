package geo

import (
	"math"
	"strings"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/util"
)

// Precision is the number of decimal places kept in projected coordinates (~0.1 m).
const Precision uint = 6

type Model interface {
	Name() string
	// Destination returns the point reached from (lat, lon) after distanceKm at initial bearingDeg.
	Destination(lat, lon, bearingDeg, distanceKm float64) (float64, float64)
	Distance(a, b datastructure.Coordinate) float64
	// Bearing is the initial bearing at a of the path toward b.
	Bearing(a, b datastructure.Coordinate) float64
}

func ParseModel(s string, sphereRadiusKm float64) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ellipsoid", "wgs84":
		return NewWGS84(), nil
	case "sphere":
		return NewSphere(sphereRadiusKm), nil
	default:
		return nil, domain.WrapErrorf(nil, domain.ErrInvalidFormat, "unknown earth model %q (want ellipsoid or sphere)", s)
	}
}

// Projector solves the destination problem on a Model and rounds the result at the boundary.
type Projector struct {
	model     Model
	precision uint
}

func NewProjector(model Model) *Projector {
	return &Projector{model: model, precision: Precision}
}

func (p *Projector) Model() Model {
	return p.model
}

func (p *Projector) Project(center datastructure.Coordinate, bearingDeg, distanceKm float64) datastructure.Coordinate {
	lat, lon := center.Lat, center.Lon
	if distanceKm != 0 {
		lat, lon = p.model.Destination(center.Lat, center.Lon, bearingDeg, distanceKm)
	}
	return p.finalize(lat, lon)
}

func (p *Projector) Distance(a, b datastructure.Coordinate) float64 {
	return p.model.Distance(a, b)
}

// Bearing is the bearing at a toward b, rounded like projected coordinates.
func (p *Projector) Bearing(a, b datastructure.Coordinate) float64 {
	return math.Mod(util.RoundFloat(p.model.Bearing(a, b), p.precision), 360.0)
}

func (p *Projector) finalize(lat, lon float64) datastructure.Coordinate {
	lat = util.RoundFloat(util.ClampLat(lat), p.precision)
	// rounding can push -179.9999996 onto -180
	lon = util.NormalizeLon(util.RoundFloat(util.NormalizeLon(lon), p.precision))
	// +0 drops negative zero
	return datastructure.NewCoordinate(lat+0, lon+0)
}
