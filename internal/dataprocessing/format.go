package dataprocessing

import (
	"math"
	"strconv"
)

// FormatFloat writes the shortest representation that round-trips, keeping a
// trailing ".0" on whole numbers so float columns stay recognizable. NaN,
// infinities and negative zero render as "0.0".
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		f = 0
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) {
		s += ".0"
	}
	return s
}
