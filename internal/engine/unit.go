package engine

import "github.com/google/uuid"

// Unit is a placed object instance. It is passed around by value; the ID is
// the handle used to find the live instance in a Scene.
type Unit struct {
	ID         uuid.UUID
	Name       string
	Position   [3]float32
	Rotation   [3]float32 // Euler angles in degrees
	Scale      [3]float32
	Selectable bool
}

func NewUnit(name string) Unit {
	return Unit{
		ID:         uuid.New(),
		Name:       name,
		Scale:      [3]float32{1, 1, 1},
		Selectable: true,
	}
}
