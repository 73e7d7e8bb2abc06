package raycast

import (
	"math"
	"sort"
	"sync"

	"github.com/bytearena/planar/common/utils/trigo"
	"github.com/bytearena/planar/common/utils/vector"
	"github.com/dhconnelly/rtreego"
)

// Index answers ray queries against a set of obstacle segments, using an
// R-tree to select the obstacles near the ray before the exact test.
// It is safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	rtree  *rtreego.Rtree
	margin float64
	size   int

	// longest obstacle, widens queries so that margin hits are not missed
	longest float64

	// extent of every inserted obstacle, bounds unlimited rays
	min vector.Vector2
	max vector.Vector2
}

type Ray struct {
	ID        string
	Origin    vector.Vector2
	Direction vector.Vector2
	MaxDist   float64 // <= 0 means unbounded
}

type Hit struct {
	Obstacle *Obstacle
	Point    vector.Vector2
	Distance float64
}

type Result struct {
	Ray Ray
	Hit Hit
	Ok  bool
}

func NewIndex(obstacles ...*Obstacle) *Index {
	index := &Index{
		rtree:  rtreego.NewTree(2, 25, 50),
		margin: vector.EPS,
		min:    vector.MakeVector2(math.Inf(1), math.Inf(1)),
		max:    vector.MakeVector2(math.Inf(-1), math.Inf(-1)),
	}

	for _, obstacle := range obstacles {
		index.Insert(obstacle)
	}

	return index
}

// SetMargin changes the tolerance passed to trigo.IntersectRaySegmentWithMargin.
func (index *Index) SetMargin(margin float64) {
	index.mu.Lock()
	defer index.mu.Unlock()

	index.margin = margin
}

func (index *Index) Insert(obstacle *Obstacle) {
	index.mu.Lock()
	defer index.mu.Unlock()

	index.rtree.Insert(obstacle)
	index.size++
	index.longest = math.Max(index.longest, obstacle.Segment.Length())

	a, b := obstacle.Segment.Get()
	for _, p := range []vector.Vector2{a, b} {
		x, y := p.Get()
		index.min = vector.MakeVector2(math.Min(index.min.GetX(), x), math.Min(index.min.GetY(), y))
		index.max = vector.MakeVector2(math.Max(index.max.GetX(), x), math.Max(index.max.GetY(), y))
	}
}

func (index *Index) Len() int {
	index.mu.RLock()
	defer index.mu.RUnlock()

	return index.size
}

// Cast returns the obstacle hit closest to the origin of the ray.
func (index *Index) Cast(ray Ray) (Hit, bool) {
	hits := index.CastAll(ray)
	if len(hits) == 0 {
		return Hit{}, false
	}

	return hits[0], true
}

// CastAll returns every obstacle hit by the ray, nearest first.
func (index *Index) CastAll(ray Ray) []Hit {
	index.mu.RLock()
	defer index.mu.RUnlock()

	hits := make([]Hit, 0)

	if ray.Direction.IsNull() || index.size == 0 {
		return hits
	}

	direction, err := ray.Direction.Normalize()
	if err != nil {
		return hits
	}

	length := ray.MaxDist
	if length <= 0 {
		length = index.reach(ray.Origin)
	}

	padding := boundsPadding + math.Abs(index.margin)*index.longest
	bb, err := getBoundingBox(padding, ray.Origin, ray.Origin.Add(direction.Scale(length)))
	if err != nil {
		return hits
	}

	for _, spatial := range index.rtree.SearchIntersect(bb) {
		obstacle := spatial.(*Obstacle)
		a, b := obstacle.Segment.Get()

		point, ok := trigo.IntersectRaySegmentWithMargin(ray.Origin, ray.Direction, a, b, index.margin)
		if !ok {
			continue
		}

		distance := point.Dist(ray.Origin)
		if ray.MaxDist > 0 && distance > ray.MaxDist {
			continue
		}

		hits = append(hits, Hit{
			Obstacle: obstacle,
			Point:    point,
			Distance: distance,
		})
	}

	sort.Sort(HitsByDistanceAsc(hits))

	return hits
}

// CastMany casts every ray concurrently; results keep the order of rays.
func (index *Index) CastMany(rays []Ray) []Result {
	results := make([]Result, len(rays))

	wg := sync.WaitGroup{}
	wg.Add(len(rays))

	for i, ray := range rays {
		go func(i int, ray Ray) {
			hit, ok := index.Cast(ray)
			results[i] = Result{Ray: ray, Hit: hit, Ok: ok}
			wg.Done()
		}(i, ray)
	}

	wg.Wait()

	return results
}

// Visible is true when no obstacle crosses the segment [from, to], except at to.
// A point always sees itself.
func (index *Index) Visible(from vector.Vector2, to vector.Vector2) bool {
	if from.Equals(to) {
		return true
	}

	index.mu.RLock()
	defer index.mu.RUnlock()

	bb, err := getBoundingBox(boundsPadding, from, to)
	if err != nil {
		return false
	}

	for _, spatial := range index.rtree.SearchIntersect(bb) {
		obstacle := spatial.(*Obstacle)
		a, b := obstacle.Segment.Get()

		point, intersects, colinear, _ := trigo.IntersectionWithLineSegment(from, to, a, b)
		if !intersects {
			continue
		}

		if colinear || !point.Equals(to) {
			return false
		}
	}

	return true
}

// reach is the distance from origin to the farthest corner of the extent.
func (index *Index) reach(origin vector.Vector2) float64 {
	minx, miny := index.min.Get()
	maxx, maxy := index.max.Get()

	reach := 0.0
	for _, corner := range []vector.Vector2{
		vector.MakeVector2(minx, miny),
		vector.MakeVector2(minx, maxy),
		vector.MakeVector2(maxx, miny),
		vector.MakeVector2(maxx, maxy),
	} {
		reach = math.Max(reach, corner.Dist(origin))
	}

	return reach + boundsPadding
}

type HitsByDistanceAsc []Hit

func (a HitsByDistanceAsc) Len() int      { return len(a) }
func (a HitsByDistanceAsc) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a HitsByDistanceAsc) Less(i, j int) bool {
	if a[i].Distance == a[j].Distance {
		return a[i].Obstacle.ID < a[j].Obstacle.ID
	}

	return a[i].Distance < a[j].Distance
}
