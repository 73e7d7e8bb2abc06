package number

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance below which two scalars are considered equal.
const Epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return IsZeroEps(f, Epsilon)
}

func IsZeroEps(f float64, eps float64) bool {
	return math.Abs(f) < eps
}

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}
