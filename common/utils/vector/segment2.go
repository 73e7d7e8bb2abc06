package vector

type Segment2 struct {
	a Vector2
	b Vector2
}

func MakeSegment2(a, b Vector2) Segment2 {
	return Segment2{a, b}
}

func (s Segment2) Get() (Vector2, Vector2) {
	return s.a, s.b
}

// Vector is the displacement from A to B.
func (s Segment2) Vector() Vector2 {
	return s.b.Sub(s.a)
}

func (s Segment2) Length() float64 {
	return s.Vector().Mag()
}

func (s Segment2) LengthSq() float64 {
	return s.Vector().MagSq()
}

func (s Segment2) Center() Vector2 {
	return s.a.Add(s.b).Scale(0.5)
}

// IsDegenerate is true for point-like segments.
func (s Segment2) IsDegenerate() bool {
	return s.LengthSq() < EPS
}

func (s Segment2) String() string {
	return "<Segment2(" + s.a.String() + " -> " + s.b.String() + ")>"
}
