package scene

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/bytearena/planar/common/raycast"
	"github.com/bytearena/planar/common/utils/vector"
	"github.com/pkg/errors"
)

type ObstacleDescription struct {
	ID string         `json:"id"`
	A  vector.Vector2 `json:"a"`
	B  vector.Vector2 `json:"b"`
}

type RayDescription struct {
	ID        string         `json:"id"`
	Origin    vector.Vector2 `json:"origin"`
	Direction vector.Vector2 `json:"direction"`
	MaxDist   float64        `json:"maxdist"`
}

// Scene is the JSON description of obstacles and of the rays to cast against them.
type Scene struct {
	Margin    *float64              `json:"margin"`
	Obstacles []ObstacleDescription `json:"obstacles"`
	Rays      []RayDescription      `json:"rays"`
}

func (s Scene) GetMargin() float64 {
	if s.Margin == nil {
		return vector.EPS
	}

	return *s.Margin
}

func Load(scenepath string) (*Scene, error) {
	if _, err := os.Stat(scenepath); os.IsNotExist(err) {
		return nil, errors.New("Missing scene file: " + scenepath)
	}

	buf, err := os.ReadFile(scenepath)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot read scene file: "+scenepath)
	}

	scene, err := Parse(buf)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid scene file: "+scenepath)
	}

	return scene, nil
}

func Parse(buf []byte) (*Scene, error) {
	var scene Scene
	if err := json.Unmarshal(buf, &scene); err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}

	if err := scene.validate(); err != nil {
		return nil, err
	}

	return &scene, nil
}

func (s Scene) validate() error {
	if s.GetMargin() < 0 {
		return errors.New("margin cannot be negative")
	}

	ids := make(map[string]struct{})
	for i, obstacle := range s.Obstacles {
		if strings.TrimSpace(obstacle.ID) == "" {
			return errors.Errorf("obstacle #%d has no id", i)
		}

		if _, ok := ids[obstacle.ID]; ok {
			return errors.Errorf("obstacle id %q is not unique", obstacle.ID)
		}
		ids[obstacle.ID] = struct{}{}
	}

	for i, ray := range s.Rays {
		if strings.TrimSpace(ray.ID) == "" {
			return errors.Errorf("ray #%d has no id", i)
		}

		if _, err := ray.Direction.Normalize(); err != nil {
			return errors.Wrapf(err, "ray %q", ray.ID)
		}
	}

	return nil
}

// Index builds the raycast index of the obstacles of the scene.
func (s Scene) Index() (*raycast.Index, error) {
	obstacles := make([]*raycast.Obstacle, len(s.Obstacles))

	for i, description := range s.Obstacles {
		obstacle, err := raycast.NewObstacle(description.ID, description.A, description.B)
		if err != nil {
			return nil, err
		}

		obstacles[i] = obstacle
	}

	index := raycast.NewIndex(obstacles...)
	index.SetMargin(s.GetMargin())

	return index, nil
}

func (s Scene) GetRays() []raycast.Ray {
	rays := make([]raycast.Ray, len(s.Rays))

	for i, description := range s.Rays {
		rays[i] = raycast.Ray{
			ID:        description.ID,
			Origin:    description.Origin,
			Direction: description.Direction,
			MaxDist:   description.MaxDist,
		}
	}

	return rays
}
