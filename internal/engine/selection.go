package engine

import "github.com/google/uuid"

// Select replaces the current selection. Unknown or non-selectable IDs are
// ignored.
func (s *Scene) Select(ids ...uuid.UUID) {
	s.ClearSelection()
	for _, id := range ids {
		s.addToSelection(id)
	}
}

// ToggleSelect flips one unit in or out of the selection.
func (s *Scene) ToggleSelect(id uuid.UUID) {
	if s.selected[id] {
		delete(s.selected, id)
		return
	}
	s.addToSelection(id)
}

func (s *Scene) addToSelection(id uuid.UUID) {
	u, ok := s.FindByID(id)
	if !ok || !u.Selectable {
		return
	}
	s.selected[id] = true
}

func (s *Scene) ClearSelection() {
	clear(s.selected)
}

func (s *Scene) IsSelected(id uuid.UUID) bool {
	return s.selected[id]
}

// Selection returns a snapshot of the selected units in scene order.
func (s *Scene) Selection() []Unit {
	out := make([]Unit, 0, len(s.selected))
	for _, u := range s.units {
		if s.selected[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

// DeletedUnit remembers where a deleted unit lived so it can be restored.
type DeletedUnit struct {
	Unit  Unit
	Index int
}

// DeleteSelection removes every selected unit from the scene and returns
// them in their original order.
func (s *Scene) DeleteSelection() []DeletedUnit {
	var deleted []DeletedUnit
	kept := s.units[:0]
	for i, u := range s.units {
		if s.selected[u.ID] {
			deleted = append(deleted, DeletedUnit{Unit: u, Index: i})
			continue
		}
		kept = append(kept, u)
	}
	s.units = kept
	s.ClearSelection()
	return deleted
}
