package entity

// Obstacle is a static circular collider on the ground plane
type Obstacle struct {
	Center Vec3
	Radius float64
}

// Arena is the fixed play area: a square boundary with one obstacle
// (the tree trunk). It is built once and never mutated.
type Arena struct {
	Obstacle   Obstacle
	HalfExtent float64

	PlayerSpawn Vec3
	EnemySpawn  Vec3
}

// Allows reports whether a character may stand at p.
// p must be strictly outside the obstacle radius and strictly inside
// the boundary on both ground axes.
func (a *Arena) Allows(p Vec3) bool {
	d := p.Sub(a.Obstacle.Center).PlanarLength()
	if d <= a.Obstacle.Radius {
		return false
	}
	return abs(p.X) < a.HalfExtent && abs(p.Z) < a.HalfExtent
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
