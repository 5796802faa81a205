package geo

import (
	"math"
)

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

/*
InitialBearing. sudut bearing awal (great circle) dari p1 ke p2, dinormalisasi ke [0, 360).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func InitialBearing(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := degToRad(p2Lon - p1Lon)

	lat1 := degToRad(p1Lat)
	lat2 := degToRad(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := radToDeg(math.Atan2(y, x))

	return math.Mod(brng+360.0, 360.0)
}
