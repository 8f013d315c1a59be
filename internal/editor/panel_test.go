package editor

import (
	"reflect"
	"testing"

	"leveledit/internal/engine"
)

var testLayout = Layout{TabBarHeight: 32, LeftPaneWidth: 300}

func newTestPanel(host *fakeHost) *ObjectsPanel {
	if host.height == 0 {
		host.width, host.height = 1280, 720
	}
	return NewObjectsPanel(host, testLayout)
}

func testUnit(name string, pos [3]float32) engine.Unit {
	u := engine.NewUnit(name)
	u.Position = pos
	return u
}

func TestNewObjectsPanelFillsLeftPane(t *testing.T) {
	p := newTestPanel(&fakeHost{width: 1920, height: 1080})

	want := Rect{X: 0, Y: 33, Width: 300, Height: 1080 - 33}
	if p.Bounds() != want {
		t.Errorf("Expected bounds %+v, got %+v", want, p.Bounds())
	}
	if p.Mode() != ModePlace {
		t.Errorf("Expected initial mode Place, got %v", p.Mode())
	}
	if p.SelectedIndex() != 0 {
		t.Errorf("Expected initial index 0, got %d", p.SelectedIndex())
	}
}

func TestModeToggle(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)

	p.Update(newFakeUI("Select"))

	if p.Mode() != ModeSelect {
		t.Fatalf("Expected mode Select, got %v", p.Mode())
	}
	want := []engine.Event{{Kind: engine.EventObjectsTabModeChanged, Arg: int(ModeSelect)}}
	if !reflect.DeepEqual(host.events, want) {
		t.Errorf("Expected %v, got %v", want, host.events)
	}

	host.events = nil
	p.Update(newFakeUI("Place"))
	if p.Mode() != ModePlace {
		t.Fatalf("Expected mode Place, got %v", p.Mode())
	}
	if len(host.events) != 1 || host.events[0].Arg != int(ModePlace) {
		t.Errorf("Expected one ModeChanged(Place), got %v", host.events)
	}
}

func TestModeReselectCurrentEmitsNothing(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)

	p.Update(newFakeUI("Place"))

	if p.Mode() != ModePlace {
		t.Errorf("Expected mode Place, got %v", p.Mode())
	}
	if len(host.events) != 0 {
		t.Errorf("Expected no events, got %v", host.events)
	}
}

func TestPlaceModeListsCatalog(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)
	p.SetObjects([]string{"Tree", "Rock", "Wall"})

	ui := newFakeUI()
	p.Update(ui)

	want := []string{
		"row dynamic 20 1",
		"label Mode:",
		"row dynamic 20 2",
		"option Place true",
		"option Select false",
		"row dynamic 10 1",
		"row dynamic 20 1",
		"label Objects:",
		"row static 400 270 1",
		"group Objects",
		"row static 25 240 1",
		"selectable Tree true",
		"selectable Rock false",
		"selectable Wall false",
		"end group",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("Unexpected layout:\n got %q\nwant %q", ui.calls, want)
	}
	if len(host.events) != 0 {
		t.Errorf("Expected no events, got %v", host.events)
	}
}

func TestPlaceModeSelectRow(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)
	p.SetObjects([]string{"Tree", "Rock", "Wall"})

	p.Update(newFakeUI("Wall"))

	if p.SelectedIndex() != 2 {
		t.Errorf("Expected index 2, got %d", p.SelectedIndex())
	}
	want := []engine.Event{{Kind: engine.EventObjectSelectionChanged, Arg: 2}}
	if !reflect.DeepEqual(host.events, want) {
		t.Errorf("Expected %v, got %v", want, host.events)
	}

	// Next frame highlights the new row.
	ui := newFakeUI()
	p.Update(ui)
	if !ui.has("selectable Wall true") || !ui.has("selectable Tree false") {
		t.Errorf("Highlight did not follow selection: %q", ui.calls)
	}
}

func TestPlaceModeReselectCurrentRowEmitsNothing(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)
	p.SetObjects([]string{"Tree", "Rock"})

	p.Update(newFakeUI("Rock"))
	host.events = nil

	// Clicking the highlighted row toggles the selectable off; the panel keeps
	// its index.
	p.Update(newFakeUI("Rock"))

	if p.SelectedIndex() != 1 {
		t.Errorf("Expected index 1, got %d", p.SelectedIndex())
	}
	if len(host.events) != 0 {
		t.Errorf("Expected no events, got %v", host.events)
	}
}

func TestPlaceModeAtMostOneChangePerFrame(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)
	p.SetObjects([]string{"Tree", "Rock", "Wall"})

	p.Update(newFakeUI("Rock", "Wall"))

	if p.SelectedIndex() != 1 {
		t.Errorf("Expected first activated row to win, got %d", p.SelectedIndex())
	}
	if len(host.events) != 1 {
		t.Errorf("Expected exactly one event, got %v", host.events)
	}
}

func TestPlaceModeClosedGroup(t *testing.T) {
	host := &fakeHost{}
	p := newTestPanel(host)
	p.SetObjects([]string{"Tree"})

	ui := newFakeUI("Tree")
	ui.groupsOpen = false
	p.Update(ui)

	if ui.has("selectable Tree true") || ui.has("end group") {
		t.Errorf("Rows drawn into a closed group: %q", ui.calls)
	}
}

func TestSetObjectsCopies(t *testing.T) {
	p := newTestPanel(&fakeHost{})
	names := []string{"Tree", "Rock"}
	p.SetObjects(names)
	names[0] = "Changed"

	if p.Objects()[0] != "Tree" {
		t.Error("SetObjects should copy the catalog")
	}
}

func selectMode(t *testing.T, host *fakeHost) *ObjectsPanel {
	t.Helper()
	p := newTestPanel(host)
	p.Update(newFakeUI("Select"))
	host.events = nil
	return p
}

func TestSelectModeEmptySelection(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)

	ui := newFakeUI("Delete")
	p.Update(ui)

	if ui.has("label Selection:") {
		t.Error("Selection label drawn for an empty selection")
	}
	if ui.has("button Delete") {
		t.Error("Delete button drawn for an empty selection")
	}
	if len(host.events) != 0 {
		t.Errorf("Expected no events, got %v", host.events)
	}
}

func TestSelectModeSingleUnit(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)

	u := engine.NewUnit("Barracks")
	u.Position = [3]float32{1, 2.25, -3}
	u.Rotation = [3]float32{0, 90, 0}
	u.Scale = [3]float32{1.5, 1.5, 1.5}
	u.Selectable = false
	host.selection = []engine.Unit{u}

	ui := newFakeUI()
	p.Update(ui)

	want := []string{
		"Mode:",
		"Selection:",
		"Barracks",
		"Position: [1.0, 2.3, -3.0]",
		"Rotation: [0.0, 90.0, 0.0]",
		"Scale: [1.5, 1.5, 1.5]",
		"Selectable: False",
	}
	if got := ui.labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Unexpected labels:\n got %q\nwant %q", got, want)
	}
	if !ui.has("button Delete") {
		t.Error("Delete button missing")
	}
	if len(host.events) != 0 {
		t.Errorf("Expected no events, got %v", host.events)
	}
}

func TestSelectModeSelectableTrue(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)
	host.selection = []engine.Unit{engine.NewUnit("Tower")}

	ui := newFakeUI()
	p.Update(ui)

	if !ui.has("label Selectable: True") {
		t.Errorf("Expected Selectable: True, got %q", ui.labels())
	}
}

func TestSelectModeDelete(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)
	host.selection = []engine.Unit{engine.NewUnit("Tower")}

	p.Update(newFakeUI("Delete"))

	want := []engine.Event{{Kind: engine.EventObjectDeleteSelection}}
	if !reflect.DeepEqual(host.events, want) {
		t.Errorf("Expected %v, got %v", want, host.events)
	}
}

func TestSelectModeMultipleUnits(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)
	a := testUnit("Tree", [3]float32{1, 0, 2})
	b := testUnit("Rock", [3]float32{-4.5, 0, 0.25})
	host.selection = []engine.Unit{a, b}

	ui := newFakeUI("Rock [-4.5, 0.0, 0.3]")
	p.Update(ui)

	if !ui.has("group Selection") {
		t.Fatal("Selection group missing")
	}
	if !ui.has("selectable Tree [1.0, 0.0, 2.0] false") {
		t.Errorf("Row for Tree missing: %q", ui.calls)
	}
	if !ui.has("button Delete") {
		t.Error("Delete button missing")
	}
	want := []engine.Event{{Kind: engine.EventObjectSelectedUnitPicked, Arg: b}}
	if !reflect.DeepEqual(host.events, want) {
		t.Errorf("Expected %v, got %v", want, host.events)
	}
	if picked := host.events[0].Arg.(engine.Unit); picked.ID != b.ID {
		t.Errorf("Picked the wrong unit %s", picked.Name)
	}
}

func TestSelectModeMultipleUnitsNoDetails(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)
	host.selection = []engine.Unit{engine.NewUnit("A"), engine.NewUnit("B")}

	ui := newFakeUI()
	p.Update(ui)

	for _, l := range ui.labels() {
		if l == "A" || len(l) > 9 && l[:9] == "Position:" {
			t.Errorf("Detail label %q drawn for a multi-unit selection", l)
		}
	}
}

func TestSelectModeQueriesSelectionEveryFrame(t *testing.T) {
	host := &fakeHost{}
	p := selectMode(t, host)

	host.selection = []engine.Unit{engine.NewUnit("First")}
	ui := newFakeUI()
	p.Update(ui)
	if !ui.has("label First") {
		t.Fatal("First frame should show First")
	}

	host.selection = []engine.Unit{engine.NewUnit("Second")}
	ui = newFakeUI()
	p.Update(ui)
	if ui.has("label First") || !ui.has("label Second") {
		t.Errorf("Panel did not pick up the new selection: %q", ui.labels())
	}
}

func TestDrawWrapsWindow(t *testing.T) {
	p := newTestPanel(&fakeHost{})

	ui := newFakeUI()
	p.Draw(ui)

	if ui.calls[0] != "begin ObjectsTab" || ui.calls[len(ui.calls)-1] != "end" {
		t.Errorf("Draw should open and close the window: %q", ui.calls)
	}
}

func TestModeString(t *testing.T) {
	if ModePlace.String() != "Place" || ModeSelect.String() != "Select" {
		t.Error("Unexpected mode names")
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("Unexpected name %q", Mode(7).String())
	}
}
