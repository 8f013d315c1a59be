package session

import (
	"fmt"
	"log"
	"time"

	"leveledit/internal/catalog"
	"leveledit/internal/editor"
	"leveledit/internal/engine"
	"leveledit/internal/world"

	"github.com/google/uuid"
)

const statusDuration = 2 * time.Second

// Session is the editor state behind the Objects panel: the scene being
// edited, the global event bus, and the active tool.
type Session struct {
	Scene   *engine.Scene
	Bus     *engine.Bus
	Panel   *editor.ObjectsPanel
	catalog *catalog.Catalog

	width, height int
	mode          editor.Mode
	activeType    int

	undoStack []UndoState

	statusMsg  string
	statusTime time.Time
	now        func() time.Time
}

var _ editor.Host = (*Session)(nil)

func New(scene *engine.Scene, layout editor.Layout, width, height int) *Session {
	s := &Session{
		Scene:     scene,
		Bus:       engine.NewBus(),
		width:     width,
		height:    height,
		mode:      editor.ModePlace,
		undoStack: make([]UndoState, 0, maxUndoStack),
		now:       time.Now,
	}
	s.Panel = editor.NewObjectsPanel(s, layout)
	s.subscribe()
	return s
}

func (s *Session) Resolution() (int, int) {
	return s.width, s.height
}

func (s *Session) UnitSelection() []engine.Unit {
	return s.Scene.Selection()
}

func (s *Session) Emit(ev engine.Event) {
	s.Bus.Emit(ev)
}

// Frame delivers the events queued during the last redraw.
func (s *Session) Frame() {
	s.Bus.Dispatch()
}

func (s *Session) Mode() editor.Mode {
	return s.mode
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// SetCatalog swaps the placeable object types and refreshes the panel list.
func (s *Session) SetCatalog(c *catalog.Catalog) {
	s.catalog = c
	s.Panel.SetObjects(c.Names())
}

func (s *Session) ReloadCatalog(path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		s.setStatus("Catalog reload failed")
		return err
	}
	s.SetCatalog(c)
	s.setStatus(fmt.Sprintf("Loaded %d object types", len(c.Entries)))
	log.Printf("catalog: loaded %d object types from %s", len(c.Entries), path)
	return nil
}

// ActiveEntry is the catalog type new units are placed as.
func (s *Session) ActiveEntry() (catalog.Entry, bool) {
	return s.catalog.At(s.activeType)
}

// PlaceAt adds a unit of the active type at pos. It does nothing outside
// Place mode or without a valid active type.
func (s *Session) PlaceAt(pos [3]float32) (engine.Unit, bool) {
	if s.mode != editor.ModePlace {
		return engine.Unit{}, false
	}
	entry, ok := s.ActiveEntry()
	if !ok {
		return engine.Unit{}, false
	}

	u := engine.NewUnit(entry.Name)
	u.Position = pos
	u.Scale = entry.Scale
	u = s.Scene.Add(u)

	s.pushPlaceUndo(u)
	s.setStatus(fmt.Sprintf("Placed %s", u.Name))
	return u, true
}

// ClickUnit handles a viewport click on a unit in Select mode. additive
// toggles the unit instead of replacing the selection.
func (s *Session) ClickUnit(id uuid.UUID, additive bool) {
	if s.mode != editor.ModeSelect {
		return
	}
	if additive {
		s.Scene.ToggleSelect(id)
		return
	}
	s.Scene.Select(id)
}

// ClickEmpty handles a viewport click that hit no unit.
func (s *Session) ClickEmpty(additive bool) {
	if s.mode == editor.ModeSelect && !additive {
		s.Scene.ClearSelection()
	}
}

func (s *Session) Save(path string) error {
	if err := world.SaveScene(path, s.Scene); err != nil {
		s.setStatus("Save failed")
		return err
	}
	s.setStatus("Scene saved")
	log.Printf("scene: saved %d units to %s", s.Scene.Len(), path)
	return nil
}

func (s *Session) setStatus(msg string) {
	s.statusMsg = msg
	s.statusTime = s.now()
}

// Status returns the feedback message while it is still fresh.
func (s *Session) Status() string {
	if s.statusMsg == "" || s.now().Sub(s.statusTime) > statusDuration {
		return ""
	}
	return s.statusMsg
}
