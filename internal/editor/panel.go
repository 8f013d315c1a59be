package editor

import (
	"fmt"

	"leveledit/internal/engine"
)

// Mode is the Objects tab's tool mode.
type Mode int

const (
	ModePlace Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModePlace:
		return "Place"
	case ModeSelect:
		return "Select"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Layout holds the editor chrome sizes the panel is placed against.
type Layout struct {
	TabBarHeight  float32
	LeftPaneWidth float32
}

const (
	listHeight    = 400
	listMargin    = 30
	listRowHeight = 25
	listRowMargin = 60
)

// ObjectsPanel is the "Objects" tab of the left pane. In Place mode it lists
// the placeable object catalog; in Select mode it shows the unit selection.
type ObjectsPanel struct {
	host   Host
	layout Layout
	bounds Rect

	mode          Mode
	selectedIndex int
	objects       []string
}

func NewObjectsPanel(host Host, layout Layout) *ObjectsPanel {
	_, resY := host.Resolution()
	return &ObjectsPanel{
		host:   host,
		layout: layout,
		bounds: Rect{
			X:      0,
			Y:      layout.TabBarHeight + 1,
			Width:  layout.LeftPaneWidth,
			Height: float32(resY) - layout.TabBarHeight - 1,
		},
		mode: ModePlace,
	}
}

func (p *ObjectsPanel) Mode() Mode {
	return p.mode
}

func (p *ObjectsPanel) SelectedIndex() int {
	return p.selectedIndex
}

func (p *ObjectsPanel) Bounds() Rect {
	return p.bounds
}

func (p *ObjectsPanel) Objects() []string {
	return append([]string(nil), p.objects...)
}

// SetObjects replaces the catalog shown in Place mode. The selected index is
// left untouched.
func (p *ObjectsPanel) SetObjects(names []string) {
	p.objects = append(p.objects[:0], names...)
}

// Draw opens the panel window and fills it.
func (p *ObjectsPanel) Draw(ui UI) {
	if ui.Begin("ObjectsTab", p.bounds) {
		p.Update(ui)
	}
	ui.End()
}

// Update lays out the panel contents for one frame and emits the resulting
// notifications through the host.
func (p *ObjectsPanel) Update(ui UI) {
	p.updateMode(ui)

	switch p.mode {
	case ModePlace:
		p.updatePlace(ui)
	case ModeSelect:
		p.updateSelect(ui)
	}
}

func (p *ObjectsPanel) updateMode(ui UI) {
	ui.LayoutRowDynamic(20, 1)
	ui.LabelColoredWrap("Mode:", colorWhite)

	old := p.mode
	ui.LayoutRowDynamic(20, 2)
	if ui.OptionLabel("Place", p.mode == ModePlace) {
		p.mode = ModePlace
	}
	if ui.OptionLabel("Select", p.mode == ModeSelect) {
		p.mode = ModeSelect
	}
	ui.LayoutRowDynamic(10, 1)

	if p.mode != old {
		p.host.Emit(engine.Event{Kind: engine.EventObjectsTabModeChanged, Arg: int(p.mode)})
	}
}

func (p *ObjectsPanel) updatePlace(ui UI) {
	ui.LayoutRowDynamic(20, 1)
	ui.LabelColoredWrap("Objects:", colorWhite)

	ui.LayoutRowStatic(listHeight, p.layout.LeftPaneWidth-listMargin, 1)
	if !ui.BeginGroup("Objects") {
		return
	}
	ui.LayoutRowStatic(listRowHeight, p.layout.LeftPaneWidth-listRowMargin, 1)
	changed := false
	for i, name := range p.objects {
		on := ui.SelectableLabel(name, TextAlignLeft, i == p.selectedIndex)
		if on && !changed && i != p.selectedIndex {
			p.selectedIndex = i
			changed = true
			p.host.Emit(engine.Event{Kind: engine.EventObjectSelectionChanged, Arg: i})
		}
	}
	ui.EndGroup()
}

func (p *ObjectsPanel) updateSelect(ui UI) {
	sel := p.host.UnitSelection()
	if len(sel) == 0 {
		return
	}

	ui.LayoutRowDynamic(20, 1)
	ui.LabelColoredWrap("Selection:", colorWhite)

	if len(sel) > 1 {
		p.updateSelectionList(ui, sel)
	} else {
		assertf(len(sel) == 1, "expected exactly one selected unit, got %d", len(sel))
		p.updateSelectionDetails(ui, sel[0])
	}

	ui.LayoutRowDynamic(30, 1)
	if ui.ButtonLabel("Delete") {
		p.host.Emit(engine.Event{Kind: engine.EventObjectDeleteSelection})
	}
}

func (p *ObjectsPanel) updateSelectionList(ui UI, sel []engine.Unit) {
	ui.LayoutRowStatic(listHeight, p.layout.LeftPaneWidth-listMargin, 1)
	if !ui.BeginGroup("Selection") {
		return
	}
	ui.LayoutRowStatic(listRowHeight, p.layout.LeftPaneWidth-listRowMargin, 1)
	picked := false
	for _, u := range sel {
		label := fmt.Sprintf("%s %s", u.Name, FormatNumList(u.Position[:]))
		if ui.SelectableLabel(label, TextAlignLeft, false) && !picked {
			picked = true
			p.host.Emit(engine.Event{Kind: engine.EventObjectSelectedUnitPicked, Arg: u})
		}
	}
	ui.EndGroup()
}

func (p *ObjectsPanel) updateSelectionDetails(ui UI, u engine.Unit) {
	ui.LayoutRowDynamic(10, 1)
	ui.LayoutRowDynamic(20, 1)
	ui.LabelColoredWrap(u.Name, colorUnitTitle)

	lines := []string{
		"Position: " + FormatNumList(u.Position[:]),
		"Rotation: " + FormatNumList(u.Rotation[:]),
		"Scale: " + FormatNumList(u.Scale[:]),
		"Selectable: " + titleBool(u.Selectable),
	}
	for _, line := range lines {
		ui.LayoutRowDynamic(20, 1)
		ui.LabelColoredWrap(line, colorWhite)
	}
}

func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
