package utils

import "math"

// Round2 rounds v to two decimal places. All monetary and percentage values
// leave the service rounded this way.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
