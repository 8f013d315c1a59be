package physics

import (
	"leveledit/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// UnitBounds is the pick box of a unit: a unit cube standing on its
// position, scaled by the unit's scale. Rotation is ignored.
func UnitBounds(u engine.Unit) AABB {
	size := rl.Vector3{X: u.Scale[0], Y: u.Scale[1], Z: u.Scale[2]}
	center := rl.Vector3{X: u.Position[0], Y: u.Position[1] + abs(size.Y)/2, Z: u.Position[2]}
	return NewAABBFromCenter(center, size)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
