package services

import "math"

func roundToInt(value float64) int {
	return int(math.Round(value))
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

func roundTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
