package session

import (
	"fmt"

	"leveledit/internal/editor"
	"leveledit/internal/engine"
)

const maxUndoStack = 50

// UndoActionType represents the type of action that can be undone
type UndoActionType int

const (
	UndoPlace UndoActionType = iota
	UndoDelete
)

// UndoState captures state for undo operations
type UndoState struct {
	Type UndoActionType

	// For place undo - the unit to remove again
	Placed engine.Unit

	// For delete undo - the units and where they sat in the scene
	Deleted []engine.DeletedUnit
}

func (s *Session) pushPlaceUndo(u engine.Unit) {
	s.addUndoState(UndoState{Type: UndoPlace, Placed: u})
}

func (s *Session) pushDeleteUndo(deleted []engine.DeletedUnit) {
	s.addUndoState(UndoState{Type: UndoDelete, Deleted: deleted})
}

func (s *Session) addUndoState(state UndoState) {
	if len(s.undoStack) >= maxUndoStack {
		s.undoStack = s.undoStack[1:]
	}
	s.undoStack = append(s.undoStack, state)
}

// Undo reverts the most recent place or delete.
func (s *Session) Undo() bool {
	if len(s.undoStack) == 0 {
		s.setStatus("Nothing to undo")
		return false
	}

	state := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]

	switch state.Type {
	case UndoPlace:
		s.Scene.Remove(state.Placed.ID)
		s.setStatus(fmt.Sprintf("Undo: removed %s", state.Placed.Name))
	case UndoDelete:
		// Ascending original indices restore the original order.
		restored := make([]engine.Unit, 0, len(state.Deleted))
		for _, d := range state.Deleted {
			s.Scene.Insert(d.Index, d.Unit)
			restored = append(restored, d.Unit)
		}
		if s.mode == editor.ModeSelect {
			s.reselect(restored)
		}
		s.setStatus(fmt.Sprintf("Undo: restored %d units", len(state.Deleted)))
	}
	return true
}

func (s *Session) reselect(units []engine.Unit) {
	s.Scene.ClearSelection()
	for _, u := range units {
		s.Scene.ToggleSelect(u.ID)
	}
}

func (s *Session) UndoDepth() int {
	return len(s.undoStack)
}
