package raycast

import (
	"math"

	"github.com/bytearena/planar/common/utils/vector"
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// boundsPadding keeps the bounding box of axis-aligned segments from being flat.
const boundsPadding = 0.005

type Obstacle struct {
	ID      string
	Segment vector.Segment2
	rect    rtreego.Rect
}

// NewObstacle fails for point-like segments, which no ray can hit.
func NewObstacle(id string, a vector.Vector2, b vector.Vector2) (*Obstacle, error) {
	segment := vector.MakeSegment2(a, b)
	if segment.IsDegenerate() {
		return nil, errors.Wrapf(vector.ErrDegenerateVector, "obstacle %q is point-like at %s", id, a)
	}

	rect, err := getBoundingBox(boundsPadding, a, b)
	if err != nil {
		return nil, errors.Wrapf(err, "obstacle %q", id)
	}

	return &Obstacle{
		ID:      id,
		Segment: segment,
		rect:    rect,
	}, nil
}

func (o *Obstacle) Bounds() rtreego.Rect {
	return o.rect
}

func (o *Obstacle) String() string {
	return o.ID + " " + o.Segment.String()
}

func getBoundingBox(padding float64, points ...vector.Vector2) (rtreego.Rect, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range points {
		x, y := p.Get()
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{minX - padding, minY - padding},
		[]float64{maxX - minX + 2*padding, maxY - minY + 2*padding},
	)
	if err != nil {
		return rtreego.Rect{}, errors.Wrap(err, "could not define bounding box in rtree")
	}

	return rect, nil
}
