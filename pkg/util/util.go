package util

import (
	"math"
)

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// NormalizeLon wraps a longitude in degrees into (-180, 180].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon <= -180 {
		lon += 360
	} else if lon > 180 {
		lon -= 360
	}
	return lon
}

func ClampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
