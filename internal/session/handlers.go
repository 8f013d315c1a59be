package session

import (
	"fmt"
	"log"

	"leveledit/internal/editor"
	"leveledit/internal/engine"
)

func (s *Session) subscribe() {
	s.Bus.Subscribe(engine.EventObjectsTabModeChanged, s.onModeChanged)
	s.Bus.Subscribe(engine.EventObjectSelectionChanged, s.onObjectSelectionChanged)
	s.Bus.Subscribe(engine.EventObjectSelectedUnitPicked, s.onUnitPicked)
	s.Bus.Subscribe(engine.EventObjectDeleteSelection, s.onDeleteSelection)
}

func (s *Session) onModeChanged(ev engine.Event) {
	mode, ok := ev.Arg.(int)
	if !ok {
		log.Printf("session: %v with bad payload %T", ev.Kind, ev.Arg)
		return
	}
	s.mode = editor.Mode(mode)
	if s.mode == editor.ModePlace {
		s.Scene.ClearSelection()
	}
}

func (s *Session) onObjectSelectionChanged(ev engine.Event) {
	idx, ok := ev.Arg.(int)
	if !ok {
		log.Printf("session: %v with bad payload %T", ev.Kind, ev.Arg)
		return
	}
	s.activeType = idx
	if entry, ok := s.ActiveEntry(); ok {
		s.setStatus(fmt.Sprintf("Placing %s", entry.Name))
	}
}

func (s *Session) onUnitPicked(ev engine.Event) {
	u, ok := ev.Arg.(engine.Unit)
	if !ok {
		log.Printf("session: %v with bad payload %T", ev.Kind, ev.Arg)
		return
	}
	// The unit may have been deleted since the panel drew it.
	if _, found := s.Scene.FindByID(u.ID); !found {
		return
	}
	s.Scene.Select(u.ID)
}

func (s *Session) onDeleteSelection(engine.Event) {
	deleted := s.Scene.DeleteSelection()
	if len(deleted) == 0 {
		return
	}
	s.pushDeleteUndo(deleted)
	if len(deleted) == 1 {
		s.setStatus(fmt.Sprintf("Deleted %s", deleted[0].Unit.Name))
	} else {
		s.setStatus(fmt.Sprintf("Deleted %d units", len(deleted)))
	}
}
