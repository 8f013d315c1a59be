package physics

import (
	"leveledit/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Unit     engine.Unit
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest selectable unit hit by the ray.
func Raycast(units []engine.Unit, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, u := range units {
		if !u.Selectable {
			continue
		}
		if hitInfo, ok := raycastBox(origin, direction, UnitBounds(u), maxDistance); ok {
			if hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.Unit = u
				hit = true
			}
		}
	}

	return closestHit, hit
}

// RaycastGround intersects the ray with the y=0 plane.
func RaycastGround(origin, direction rl.Vector3) (rl.Vector3, bool) {
	if direction.Y > -1e-6 {
		return rl.Vector3{}, false
	}
	t := -origin.Y / direction.Y
	return rl.Vector3Add(origin, rl.Vector3Scale(direction, t)), true
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

// faceNormal picks the box face the point lies on.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}
