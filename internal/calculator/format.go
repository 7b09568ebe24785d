package calculator

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of significant digits printed for a result.
const DefaultPrecision = 6

// ErrorText is the single line printed for every failed calculation.
const ErrorText = "Error!"

// FormatResult renders v in %g style with precision significant digits.
// A precision of -1 uses the shortest representation that round-trips.
func FormatResult(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if precision == 0 {
		precision = 1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
