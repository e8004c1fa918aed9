package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for great-circle math.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to one decimal place for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// FormatDistance renders a distance for humans: meters below 1 km, one
// decimal below 10 km, rounded kilometers above.
func FormatDistance(km float64) string {
	switch {
	case km < 1:
		return fmt.Sprintf("%.0f m", km*1000)
	case km < 10:
		return fmt.Sprintf("%.1f km", km)
	default:
		return fmt.Sprintf("%.0f km", km)
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
