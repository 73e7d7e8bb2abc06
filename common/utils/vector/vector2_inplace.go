package vector

// The methods below mutate their receiver and return it, so that calls can
// be chained: NewVector2(1, 2).AddInPlace(b).ScaleInPlace(2).

func (a *Vector2) AddInPlace(b Vector2) *Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a *Vector2) SubInPlace(b Vector2) *Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a *Vector2) ScaleInPlace(scale float64) *Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

// NormalizeInPlace leaves a untouched when it fails.
func (a *Vector2) NormalizeInPlace() (*Vector2, error) {
	n, err := a.Normalize()
	if err != nil {
		return a, err
	}

	*a = n
	return a, nil
}
