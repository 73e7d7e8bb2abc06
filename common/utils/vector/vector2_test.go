package vector_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/planar/common/utils/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []vector.Vector2{
	vector.MakeVector2(0, 0),
	vector.MakeVector2(3, 4),
	vector.MakeVector2(-1.5, 2.25),
	vector.MakeVector2(1e3, -7e2),
	vector.MakeVector2(0.001, 0.002),
}

func TestZeroValueIsOrigin(t *testing.T) {
	var v vector.Vector2
	x, y := v.Get()

	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, vector.MakeNullVector2(), v)
}

func TestDist(t *testing.T) {
	a := vector.MakeVector2(1, 1)
	b := vector.MakeVector2(4, 5)

	assert.Equal(t, 5.0, a.Dist(b))
	assert.Equal(t, 25.0, a.DistSq(b))

	for _, p := range samples {
		for _, q := range samples {
			assert.Equal(t, p.Dist(q), q.Dist(p))
			assert.InDelta(t, p.DistSq(q), math.Pow(p.Dist(q), 2), 1e-6)
		}
	}
}

func TestMag(t *testing.T) {
	v := vector.MakeVector2(3, 4)

	assert.Equal(t, 5.0, v.Mag())
	assert.Equal(t, 25.0, v.MagSq())
	assert.Equal(t, 0.0, vector.MakeNullVector2().Mag())
}

func TestArithmeticDoesNotMutate(t *testing.T) {
	a := vector.MakeVector2(1, 2)
	b := vector.MakeVector2(3, 5)

	assert.Equal(t, vector.MakeVector2(4, 7), a.Add(b))
	assert.Equal(t, vector.MakeVector2(-2, -3), a.Sub(b))
	assert.Equal(t, vector.MakeVector2(2.5, 5), a.Scale(2.5))
	assert.Equal(t, vector.MakeVector2(1, 2), a)

	c := a.Clone()
	c = c.Add(b)
	assert.Equal(t, vector.MakeVector2(1, 2), a)
	assert.Equal(t, vector.MakeVector2(4, 7), c)
}

func TestInPlace(t *testing.T) {
	v := vector.NewVector2(1, 2)

	res := v.AddInPlace(vector.MakeVector2(1, 1))
	assert.Same(t, v, res)
	assert.Equal(t, vector.MakeVector2(2, 3), *v)

	res = v.SubInPlace(vector.MakeVector2(2, 0))
	assert.Same(t, v, res)
	assert.Equal(t, vector.MakeVector2(0, 3), *v)

	res = v.ScaleInPlace(2)
	assert.Same(t, v, res)
	assert.Equal(t, vector.MakeVector2(0, 6), *v)

	res, err := v.NormalizeInPlace()
	require.NoError(t, err)
	assert.Same(t, v, res)
	assert.Equal(t, vector.MakeVector2(0, 1), *v)

	chained := vector.NewVector2(1, 0).AddInPlace(vector.MakeVector2(1, 0)).ScaleInPlace(3)
	assert.Equal(t, vector.MakeVector2(6, 0), *chained)
}

func TestDotCross(t *testing.T) {
	a := vector.MakeVector2(1, 0)
	b := vector.MakeVector2(0, 1)

	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 11.0, vector.MakeVector2(3, 4).Dot(vector.MakeVector2(1, 2)))

	// b is counter-clockwise from a
	assert.Equal(t, 1.0, a.Cross(b))
	assert.Equal(t, -1.0, b.Cross(a))

	for _, p := range samples {
		assert.Equal(t, 0.0, p.Cross(p))
		for _, q := range samples {
			assert.Equal(t, p.Cross(q), -q.Cross(p))
		}
	}
}

func TestEquals(t *testing.T) {
	for _, p := range samples {
		assert.True(t, p.Equals(p))
		assert.True(t, p.EqualsEps(p, 1e-12))
	}

	a := vector.MakeVector2(0, 0)

	assert.True(t, a.Equals(vector.MakeVector2(0.0000009, -0.0000009)))
	assert.False(t, a.Equals(vector.MakeVector2(0.000001, 0)))
	assert.True(t, a.EqualsEps(vector.MakeVector2(0.5, 0.5), 1))
	assert.False(t, a.EqualsEps(vector.MakeVector2(1, 0), 1))
}

func TestEqualsIsPerAxis(t *testing.T) {
	a := vector.MakeVector2(0, 0)
	b := vector.MakeVector2(0.9, 0.9)

	// farther than eps in euclidean distance, still equal per axis
	assert.Greater(t, a.Dist(b), 1.0)
	assert.True(t, a.EqualsEps(b, 1))
}

func TestNormalize(t *testing.T) {
	for _, p := range samples[1:] {
		n, err := p.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Mag(), vector.EPS)
		assert.InDelta(t, 0.0, n.Cross(p), 1e-9)
		assert.Greater(t, n.Dot(p), 0.0)
	}

	n, err := vector.MakeVector2(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.GetX(), 1e-12)
	assert.InDelta(t, 0.8, n.GetY(), 1e-12)
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := vector.MakeNullVector2().Normalize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, vector.ErrDegenerateVector))

	var degenerate *vector.DegenerateVectorError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, 0.0, degenerate.Length)

	_, err = vector.MakeVector2(1e-7, 0).Normalize()
	assert.True(t, errors.Is(err, vector.ErrDegenerateVector))

	v := vector.NewVector2(1e-8, 1e-8)
	res, err := v.NormalizeInPlace()
	assert.Error(t, err)
	assert.Same(t, v, res)
	assert.Equal(t, vector.MakeVector2(1e-8, 1e-8), *v)
}

func TestOrthogonal(t *testing.T) {
	v := vector.MakeVector2(1, 0)

	assert.Equal(t, vector.MakeVector2(0, -1), v.OrthogonalClockwise())
	assert.Equal(t, vector.MakeVector2(0, 1), v.OrthogonalCounterClockwise())
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, vector.MakeNullVector2().Angle())
	assert.InDelta(t, 0.0, vector.MakeVector2(0, 1).Angle(), 1e-12)
	assert.InDelta(t, math.Pi/2, vector.MakeVector2(1, 0).Angle(), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, vector.MakeVector2(-1, 0).Angle(), 1e-12)
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(vector.MakeVector2(1.5, -2))
	require.NoError(t, err)
	assert.Equal(t, "[1.5000,-2.0000]", string(data))

	var v vector.Vector2
	require.NoError(t, json.Unmarshal([]byte("[3, 4.25]"), &v))
	assert.Equal(t, vector.MakeVector2(3, 4.25), v)

	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &v))
}

func TestString(t *testing.T) {
	assert.Equal(t, "<Vector2(1.00000, -0.50000)>", vector.MakeVector2(1, -0.5).String())
}

func TestB2Vec2(t *testing.T) {
	v := vector.MakeVector2(2, -3)
	b := v.ToB2Vec2()

	assert.Equal(t, box2d.MakeB2Vec2(2, -3), b)
	assert.Equal(t, v, vector.FromB2Vec2(b))
}

func TestSegment2(t *testing.T) {
	s := vector.MakeSegment2(vector.MakeVector2(0, 0), vector.MakeVector2(6, 8))

	assert.Equal(t, 10.0, s.Length())
	assert.Equal(t, 100.0, s.LengthSq())
	assert.Equal(t, vector.MakeVector2(3, 4), s.Center())
	assert.Equal(t, vector.MakeVector2(6, 8), s.Vector())
	assert.False(t, s.IsDegenerate())

	p := vector.MakeVector2(1, 1)
	assert.True(t, vector.MakeSegment2(p, p).IsDegenerate())
}

func TestIsNull(t *testing.T) {
	assert.True(t, vector.MakeNullVector2().IsNull())
	assert.True(t, vector.MakeVector2(0.0000009, -0.0000009).IsNull())
	assert.False(t, vector.MakeVector2(0.000001, 0).IsNull())
	assert.False(t, vector.MakeVector2(0, -3).IsNull())
}
