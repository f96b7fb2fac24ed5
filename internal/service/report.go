package service

import (
	"math"
	"strconv"
)

// formatHours renders a per-item duration as hours rounded to two
// decimals. Whole numbers keep one decimal place ("1.0") so the report
// reads as hours, not a count.
func formatHours(seconds int) string {
	h := math.Round(float64(seconds)/3600*100) / 100
	if h == math.Trunc(h) {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}
