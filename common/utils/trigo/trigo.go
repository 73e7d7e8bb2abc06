package trigo

import (
	"math"

	"github.com/bytearena/planar/common/utils/number"
	"github.com/bytearena/planar/common/utils/vector"
)

// ClosestPointOnSegment returns the point of the closed segment [a, b]
// nearest to p. A point-like segment returns a.
func ClosestPointOnSegment(a vector.Vector2, b vector.Vector2, p vector.Vector2) vector.Vector2 {
	ab := b.Sub(a)
	abn, err := ab.Normalize()
	if err != nil {
		return a
	}

	// signed distance from a to the foot of the perpendicular from p
	k := abn.Dot(p.Sub(a))

	if k < 0 {
		return a
	}

	if k > ab.Mag() {
		return b
	}

	return a.Add(abn.Scale(k))
}

// IntersectRaySegment is IntersectRaySegmentWithMargin with a margin of vector.EPS.
func IntersectRaySegment(r vector.Vector2, v vector.Vector2, a vector.Vector2, b vector.Vector2) (intersection vector.Vector2, intersects bool) {
	return IntersectRaySegmentWithMargin(r, v, a, b, vector.EPS)
}

// IntersectRaySegmentWithMargin casts the ray starting at r with direction v
// against the closed segment [a, b].
//
// Segment hits missing an endpoint by no more than margin (in segment
// parameter units) are accepted. When the ray and the segment are colinear,
// the reported intersection is a if r lies before the segment, b if it lies
// after it, and r itself when r is on the segment.
//
// When intersects is false, intersection is the zero vector and carries no
// meaning.
func IntersectRaySegmentWithMargin(r vector.Vector2, v vector.Vector2, a vector.Vector2, b vector.Vector2, margin float64) (intersection vector.Vector2, intersects bool) {

	ab := b.Sub(a)
	divisor := v.Cross(ab)

	var hit vector.Vector2

	if math.Abs(divisor) > vector.EPS {
		// lines cross at a + l*ab
		l := a.Sub(r).Cross(v) / divisor
		if l < -margin || l-1 > margin {
			return vector.MakeNullVector2(), false
		}

		hit = a.Add(ab.Scale(l))
	} else {
		// a null direction or a point-like segment cannot be hit
		if v.MagSq() < vector.EPS || ab.MagSq() < vector.EPS {
			return vector.MakeNullVector2(), false
		}

		// parallel; position of r projected on ab: r' = a + k*ab
		k := r.Sub(a).Dot(ab) / ab.Dot(ab)

		if a.Add(ab.Scale(k)).Dist(r) > vector.EPS {
			// parallel but not colinear
			return vector.MakeNullVector2(), false
		}

		switch {
		case k < -margin:
			hit = a
		case k-1 > margin:
			hit = b
		default:
			hit = r
		}
	}

	// behind the origin of the ray
	if hit.Sub(r).Dot(v) < 0 {
		return vector.MakeNullVector2(), false
	}

	return hit, true
}

// IntersectionWithLineSegment intersects the segments [p, p2] and [q, q2].
// Colinear overlapping segments intersect but have no single intersection point.
func IntersectionWithLineSegment(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) (intersection vector.Vector2, intersects bool, colinear bool, parallel bool) {

	r := p2.Sub(p)
	s := q2.Sub(q)
	rxs := r.Cross(s)
	qpxr := q.Sub(p).Cross(r)

	if number.IsZero(rxs) {
		if !number.IsZero(qpxr) {
			return vector.MakeNullVector2(), false, false, true
		}

		// colinear: overlapping if either segment starts within the other
		qpr := q.Sub(p).Dot(r)
		pqs := p.Sub(q).Dot(s)

		if (qpr >= 0 && qpr <= r.Dot(r)) || (pqs >= 0 && pqs <= s.Dot(s)) {
			return vector.MakeNullVector2(), true, true, true
		}

		return vector.MakeNullVector2(), false, true, true
	}

	t := q.Sub(p).Cross(s) / rxs
	u := qpxr / rxs

	if 0 <= t && t <= 1 && 0 <= u && u <= 1 {
		return p.Add(r.Scale(t)), true, false, false
	}

	return vector.MakeNullVector2(), false, false, false
}
