package utils

import (
	"fmt"
	"math"
)

const metersPerKilometer = 1000.0

// DistancePhrase formats a distance for spoken guidance. Distances under a
// kilometer are rounded to the nearest 50 meters; longer distances are
// announced in kilometers with one decimal.
func DistancePhrase(meters float64) string {
	if meters < 0 {
		meters = 0
	}
	if meters < metersPerKilometer {
		rounded := math.Round(meters/50) * 50
		if rounded < 50 {
			rounded = 50
		}
		return fmt.Sprintf("%d meters", int(rounded))
	}
	km := meters / metersPerKilometer
	if km == math.Trunc(km) {
		return fmt.Sprintf("%d kilometers", int(km))
	}
	return fmt.Sprintf("%.1f kilometers", km)
}
