package generator

import (
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/geo"
	"lintang/randcoord/pkg/sampler"
)

type DistanceSampler interface {
	Sample(rng sampler.Source, r datastructure.DistanceRange) (float64, error)
	Mode() sampler.Mode
}

type Projector interface {
	Project(center datastructure.Coordinate, bearingDeg, distanceKm float64) datastructure.Coordinate
	Distance(a, b datastructure.Coordinate) float64
	Bearing(a, b datastructure.Coordinate) float64
	Model() geo.Model
}

type Result struct {
	Coordinate datastructure.Coordinate `json:"coordinate"`
	BearingDeg float64                  `json:"bearing"`
	// BackBearingDeg is the bearing from Coordinate back to the center.
	BackBearingDeg float64 `json:"back_bearing"`
	DistanceKm     float64 `json:"distance_km"`
}

// Generator draws random coordinates around a center. It holds no mutable state, so it is safe for
// concurrent use whenever its Source is.
type Generator struct {
	sampler   DistanceSampler
	projector Projector
	rng       sampler.Source
}

type Option func(*Generator)

func WithSampler(s DistanceSampler) Option {
	return func(g *Generator) {
		g.sampler = s
	}
}

func WithProjector(p Projector) Option {
	return func(g *Generator) {
		g.projector = p
	}
}

func WithSource(rng sampler.Source) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// NewGenerator defaults to area-uniform sampling, the WGS84 ellipsoid and a crypto/rand source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.sampler == nil {
		g.sampler = sampler.NewDistanceSampler()
	}
	if g.projector == nil {
		g.projector = geo.NewProjector(geo.NewWGS84())
	}
	if g.rng == nil {
		g.rng = sampler.NewCryptoRand()
	}
	return g
}

func (g *Generator) Mode() sampler.Mode {
	return g.sampler.Mode()
}

func (g *Generator) ModelName() string {
	return g.projector.Model().Name()
}

// RandomCoordinate picks a uniform bearing in [0, 360) and a distance from r, then projects from center.
func (g *Generator) RandomCoordinate(center datastructure.Coordinate, r datastructure.DistanceRange) (Result, error) {
	if err := center.Validate(); err != nil {
		return Result{}, err
	}

	bearing := g.rng.Float64() * 360.0
	dist, err := g.sampler.Sample(g.rng, r)
	if err != nil {
		return Result{}, err
	}

	dest := g.projector.Project(center, bearing, dist)
	return Result{
		Coordinate:     dest,
		BearingDeg:     bearing,
		BackBearingDeg: g.projector.Bearing(dest, center),
		DistanceKm:     dist,
	}, nil
}
