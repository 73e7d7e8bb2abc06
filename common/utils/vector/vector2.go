package vector

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/planar/common/utils/number"
)

// EPS is the default tolerance used by every tolerance-sensitive
// operation of this package and of trigo.
const EPS = number.Epsilon

// Vector2 is either a position or a displacement, depending on the caller.
// The zero value is the origin.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// NewVector2 returns a mutable reference, the receiver of the *InPlace family.
func NewVector2(x float64, y float64) *Vector2 {
	return &Vector2{x, y}
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var xy [2]float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}

	v.x, v.y = xy[0], xy[1]
	return nil
}

func (a Vector2) Clone() Vector2 {
	return Vector2{
		x: a.x,
		y: a.y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

// Dist is the euclidean distance between a and b.
func (a Vector2) Dist(b Vector2) float64 {
	return math.Sqrt(a.DistSq(b))
}

// DistSq avoids the square root when only comparisons are needed.
func (a Vector2) DistSq(b Vector2) float64 {
	dx := a.x - b.x
	dy := a.y - b.y
	return dx*dx + dy*dy
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector2) MagSq() float64 {
	return (a.x*a.x + a.y*a.y)
}

// Normalize returns a unit vector with the direction of a.
// A vector shorter than EPS has no direction and yields a *DegenerateVectorError.
func (a Vector2) Normalize() (Vector2, error) {
	mag := a.Mag()
	if mag < EPS {
		return a, &DegenerateVectorError{Length: mag}
	}

	return Vector2{a.x / mag, a.y / mag}, nil
}

func (a Vector2) OrthogonalClockwise() Vector2 {
	return MakeVector2(a.y, -a.x)
}

func (a Vector2) OrthogonalCounterClockwise() Vector2 {
	return MakeVector2(-a.y, a.x)
}

// Angle is measured clockwise from the "north" (0, 1) axis, in [0, 2π).
func (a Vector2) Angle() float64 {
	if a.x == 0 && a.y == 0 {
		return 0
	}

	angle := math.Atan2(a.y, a.x)

	// quarter turn to the left
	angle = math.Pi/2.0 - angle

	if angle < 0 {
		angle += 2 * math.Pi
	}

	return angle
}

// Cross is the z component of the 3D cross product of a and v with z=0.
// Positive when v is counter-clockwise from a.
func (a Vector2) Cross(v Vector2) float64 {
	return a.x*v.y - a.y*v.x
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

// Equals compares per axis with EPS. See EqualsEps.
func (a Vector2) Equals(b Vector2) bool {
	return a.EqualsEps(b, EPS)
}

// EqualsEps is true when neither the x nor the y components differ by eps
// or more. The test is per axis, not a distance: two points passing it can
// be up to eps*√2 apart.
func (a Vector2) EqualsEps(b Vector2, eps float64) bool {
	return number.IsZeroEps(a.x-b.x, eps) && number.IsZeroEps(a.y-b.y, eps)
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

func (a Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(a.GetX(), a.GetY())
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return MakeVector2(v.X, v.Y)
}
