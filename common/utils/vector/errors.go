package vector

import (
	"github.com/bytearena/planar/common/utils/number"
	"github.com/pkg/errors"
)

// ErrDegenerateVector matches every *DegenerateVectorError with errors.Is.
var ErrDegenerateVector = errors.New("degenerate vector")

// DegenerateVectorError is returned when an operation needs a direction
// from a vector whose length is below EPS.
type DegenerateVectorError struct {
	Length float64
}

func (e *DegenerateVectorError) Error() string {
	return "degenerate vector: length " + number.FloatToStr(e.Length, 9) + " is below epsilon"
}

func (e *DegenerateVectorError) Is(target error) bool {
	return target == ErrDegenerateVector
}
