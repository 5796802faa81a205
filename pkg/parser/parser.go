package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
)

const distanceFormatMessage = "Invalid distance format. Please provide a number or a range (e.g., '10' or '5-15')."

// ParseDistanceRange accepts "N" (0 to N km) or "N-M" (N to M km).
func ParseDistanceRange(s string) (datastructure.DistanceRange, error) {
	var (
		minKm, maxKm float64
		err          error
	)
	if lo, hi, found := strings.Cut(s, "-"); found {
		if minKm, err = parseKm(lo); err != nil {
			return datastructure.DistanceRange{}, err
		}
		if maxKm, err = parseKm(hi); err != nil {
			return datastructure.DistanceRange{}, err
		}
	} else {
		if maxKm, err = parseKm(s); err != nil {
			return datastructure.DistanceRange{}, err
		}
	}

	return datastructure.NewDistanceRange(minKm, maxKm)
}

func parseKm(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, domain.WrapErrorf(err, domain.ErrInvalidFormat, distanceFormatMessage)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.WrapErrorf(nil, domain.ErrInvalidFormat, distanceFormatMessage)
	}
	return v, nil
}

// CleanCoordinateInput drops everything but digits, '.', ',' and '-', so "40.7128°, -74.0060°" becomes "40.7128,-74.0060".
func CleanCoordinateInput(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// ParseCoordinate parses a decorated "lat,lon" string.
func ParseCoordinate(s string) (datastructure.Coordinate, error) {
	cleaned := CleanCoordinateInput(s)
	latStr, lonStr, found := strings.Cut(cleaned, ",")
	if !found {
		return datastructure.Coordinate{}, domain.WrapErrorf(nil, domain.ErrInvalidFormat,
			"Invalid coordinate format %q. Please provide 'Lat,Long' (e.g., '40.7128,-74.0060').", s)
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if err := errors.Join(errLat, errLon); err != nil {
		return datastructure.Coordinate{}, domain.WrapErrorf(err, domain.ErrInvalidFormat,
			"Invalid coordinate format %q. Please provide 'Lat,Long' (e.g., '40.7128,-74.0060').", s)
	}

	c := datastructure.NewCoordinate(lat, lon)
	if err := c.Validate(); err != nil {
		return datastructure.Coordinate{}, err
	}
	return c, nil
}
