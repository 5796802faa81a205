package sampler

import (
	"fmt"
	"math"
	"strings"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/util"
)

// EarthRadiusKM is the IUGG mean earth radius.
const EarthRadiusKM = 6371.0088

type Mode int

const (
	// AreaUniform spreads points evenly over the surface of the spherical annulus.
	AreaUniform Mode = iota
	// LinearUniform draws the distance itself uniformly, so points crowd near the center.
	LinearUniform
)

func (m Mode) String() string {
	switch m {
	case AreaUniform:
		return "area"
	case LinearUniform:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "area":
		return AreaUniform, nil
	case "linear":
		return LinearUniform, nil
	default:
		return 0, domain.WrapErrorf(nil, domain.ErrInvalidFormat, "unknown sampling mode %q (want area or linear)", s)
	}
}

type DistanceSampler struct {
	mode     Mode
	radiusKm float64
}

type Option func(*DistanceSampler)

func WithMode(m Mode) Option {
	return func(s *DistanceSampler) {
		s.mode = m
	}
}

func WithRadius(radiusKm float64) Option {
	return func(s *DistanceSampler) {
		s.radiusKm = radiusKm
	}
}

func NewDistanceSampler(opts ...Option) *DistanceSampler {
	s := &DistanceSampler{mode: AreaUniform, radiusKm: EarthRadiusKM}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DistanceSampler) Mode() Mode {
	return s.mode
}

/*
SampleDistance. draw a great-circle distance (km) in [minKm, maxKm].

area mode inverts the CDF of the spherical cap area, F(a) = (cos a_min - cos a) / (cos a_min - cos a_max),
so the projected point is uniform by surface area and not by radius.
*/
func (s *DistanceSampler) SampleDistance(rng Source, minKm, maxKm float64) (float64, error) {
	return s.Sample(rng, datastructure.DistanceRange{MinKm: minKm, MaxKm: maxKm})
}

func (s *DistanceSampler) Sample(rng Source, r datastructure.DistanceRange) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if r.IsFixed() {
		return r.MinKm, nil
	}

	switch s.mode {
	case LinearUniform:
		u := rng.Float64()
		return util.Clamp(r.MinKm+u*(r.MaxKm-r.MinKm), r.MinKm, r.MaxKm), nil
	case AreaUniform:
		return s.sampleArea(rng, r.MinKm, r.MaxKm), nil
	default:
		return 0, domain.WrapErrorf(nil, domain.ErrInternalServerError, "unknown sampling mode %v", s.mode)
	}
}

func (s *DistanceSampler) sampleArea(rng Source, minKm, maxKm float64) float64 {
	aMin := minKm / s.radiusKm
	aMax := maxKm / s.radiusKm
	u := rng.Float64()

	var a float64
	if aMax <= math.Pi {
		cosA := math.Cos(aMin) - u*(math.Cos(aMin)-math.Cos(aMax))
		cosA = util.Clamp(cosA, -1, 1)
		a = math.Acos(cosA)
	} else {
		// past the antipode the path sweeps the sphere again, density stays |sin a|
		gMin, gMax := sweptArea(aMin), sweptArea(aMax)
		a = inverseSweptArea(gMin + u*(gMax-gMin))
	}

	return util.Clamp(s.radiusKm*a, minKm, maxKm)
}

// sweptArea is the integral of |sin t| over [0, a]. Each half turn adds 2.
func sweptArea(a float64) float64 {
	k := math.Floor(a / math.Pi)
	return 2*k + 1 - math.Cos(a-k*math.Pi)
}

func inverseSweptArea(g float64) float64 {
	k := math.Floor(g / 2)
	r := math.Acos(util.Clamp(1-(g-2*k), -1, 1))
	return k*math.Pi + r
}

// AreaCDF is the fraction of the area-weighted range [minKm, maxKm] lying within d of the center.
func AreaCDF(d, minKm, maxKm, radiusKm float64) float64 {
	gMin := sweptArea(minKm / radiusKm)
	gMax := sweptArea(maxKm / radiusKm)
	if gMin == gMax {
		return 1
	}
	return util.Clamp((sweptArea(d/radiusKm)-gMin)/(gMax-gMin), 0, 1)
}
