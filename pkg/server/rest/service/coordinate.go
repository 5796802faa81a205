package service

import (
	"context"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/generator"
	"lintang/randcoord/pkg/geo"
	"lintang/randcoord/pkg/sampler"

	"github.com/twpayne/go-polyline"
	"github.com/uber/h3-go/v4"
)

// number of segments in the rendered center -> result path
const pathSegments = 16

const maxH3Resolution = 15

type RandomCoordinateQuery struct {
	Center       datastructure.Coordinate
	Range        datastructure.DistanceRange
	Mode         sampler.Mode
	Model        string
	H3Resolution *int
}

type RandomCoordinateResult struct {
	Coordinate     datastructure.Coordinate
	BearingDeg     float64
	BackBearingDeg float64
	DistanceKm     float64
	Path           string
	H3Cell         string
	Mode           string
	Model          string
}

type CoordinateService struct {
	generators map[string]*generator.Generator
	sphere     geo.Sphere
}

// NewCoordinateService builds one generator per (mode, model) pair, all sharing rng.
func NewCoordinateService(rng sampler.Source) *CoordinateService {
	svc := &CoordinateService{
		generators: make(map[string]*generator.Generator),
		sphere:     geo.NewSphere(sampler.EarthRadiusKM),
	}
	for _, mode := range []sampler.Mode{sampler.AreaUniform, sampler.LinearUniform} {
		for _, model := range []geo.Model{geo.NewWGS84(), svc.sphere} {
			svc.generators[generatorKey(mode, model.Name())] = generator.NewGenerator(
				generator.WithSampler(sampler.NewDistanceSampler(sampler.WithMode(mode))),
				generator.WithProjector(geo.NewProjector(model)),
				generator.WithSource(rng),
			)
		}
	}
	return svc
}

func generatorKey(mode sampler.Mode, model string) string {
	return mode.String() + "/" + model
}

func (s *CoordinateService) RandomCoordinate(ctx context.Context, q RandomCoordinateQuery) (RandomCoordinateResult, error) {
	model := q.Model
	if model == "" {
		model = geo.NewWGS84().Name()
	}
	g, ok := s.generators[generatorKey(q.Mode, model)]
	if !ok {
		return RandomCoordinateResult{}, domain.WrapErrorf(nil, domain.ErrInvalidFormat, "unknown mode/model %s/%s", q.Mode, model)
	}
	if q.H3Resolution != nil && (*q.H3Resolution < 0 || *q.H3Resolution > maxH3Resolution) {
		return RandomCoordinateResult{}, domain.WrapErrorf(nil, domain.ErrInvalidFormat,
			"h3 resolution %d out of range [0, %d]", *q.H3Resolution, maxH3Resolution)
	}

	res, err := g.RandomCoordinate(q.Center, q.Range)
	if err != nil {
		return RandomCoordinateResult{}, err
	}

	out := RandomCoordinateResult{
		Coordinate:     res.Coordinate,
		BearingDeg:     res.BearingDeg,
		BackBearingDeg: res.BackBearingDeg,
		DistanceKm:     res.DistanceKm,
		Path:           s.renderPath(q.Center, res.Coordinate),
		Mode:           g.Mode().String(),
		Model:          g.ModelName(),
	}

	if q.H3Resolution != nil {
		cell := h3.LatLngToCell(h3.NewLatLng(res.Coordinate.Lat, res.Coordinate.Lon), *q.H3Resolution)
		out.H3Cell = cell.String()
	}

	return out, nil
}

// renderPath encodes the great circle from center to dst as a google polyline.
func (s *CoordinateService) renderPath(center, dst datastructure.Coordinate) string {
	coords := make([][]float64, 0, pathSegments+1)
	for i := 0; i <= pathSegments; i++ {
		p := s.sphere.Interpolate(center, dst, float64(i)/float64(pathSegments))
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
