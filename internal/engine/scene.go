package engine

import "github.com/google/uuid"

type Scene struct {
	Name     string
	units    []Unit
	selected map[uuid.UUID]bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		units:    make([]Unit, 0),
		selected: make(map[uuid.UUID]bool),
	}
}

// Add appends u to the scene. A zero ID is replaced with a fresh one.
func (s *Scene) Add(u Unit) Unit {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.units = append(s.units, u)
	return u
}

// Insert puts u back at index i, clamped to the scene bounds. Used by undo.
func (s *Scene) Insert(i int, u Unit) {
	if i < 0 {
		i = 0
	}
	if i > len(s.units) {
		i = len(s.units)
	}
	s.units = append(s.units, Unit{})
	copy(s.units[i+1:], s.units[i:])
	s.units[i] = u
}

// Remove deletes the unit with the given ID and returns its former index,
// or -1 if it was not in the scene.
func (s *Scene) Remove(id uuid.UUID) int {
	for i, u := range s.units {
		if u.ID == id {
			s.units = append(s.units[:i], s.units[i+1:]...)
			delete(s.selected, id)
			return i
		}
	}
	return -1
}

func (s *Scene) FindByID(id uuid.UUID) (Unit, bool) {
	for _, u := range s.units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

func (s *Scene) FindByName(name string) (Unit, bool) {
	for _, u := range s.units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// Units returns a copy of the scene's units in insertion order.
func (s *Scene) Units() []Unit {
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}

func (s *Scene) Len() int {
	return len(s.units)
}
