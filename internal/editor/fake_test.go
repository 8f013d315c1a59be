package editor

import (
	"fmt"
	"image/color"

	"leveledit/internal/engine"
)

// fakeUI records every widget call and answers interaction queries from a
// set of labels the "user" clicks this frame.
type fakeUI struct {
	clicks     map[string]bool
	groupsOpen bool
	calls      []string
}

func newFakeUI(clicks ...string) *fakeUI {
	ui := &fakeUI{clicks: make(map[string]bool), groupsOpen: true}
	for _, c := range clicks {
		ui.clicks[c] = true
	}
	return ui
}

func (f *fakeUI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeUI) Begin(title string, bounds Rect) bool {
	f.record("begin %s", title)
	return true
}

func (f *fakeUI) End() { f.record("end") }

func (f *fakeUI) LayoutRowDynamic(height float32, cols int) {
	f.record("row dynamic %g %d", height, cols)
}

func (f *fakeUI) LayoutRowStatic(height, itemWidth float32, cols int) {
	f.record("row static %g %g %d", height, itemWidth, cols)
}

func (f *fakeUI) LabelColoredWrap(text string, c color.RGBA) {
	f.record("label %s", text)
}

func (f *fakeUI) OptionLabel(text string, active bool) bool {
	f.record("option %s %t", text, active)
	return active || f.clicks[text]
}

func (f *fakeUI) SelectableLabel(text string, align TextAlign, selected bool) bool {
	f.record("selectable %s %t", text, selected)
	return selected != f.clicks[text]
}

func (f *fakeUI) BeginGroup(title string) bool {
	f.record("group %s", title)
	return f.groupsOpen
}

func (f *fakeUI) EndGroup() { f.record("end group") }

func (f *fakeUI) ButtonLabel(text string) bool {
	f.record("button %s", text)
	return f.clicks[text]
}

func (f *fakeUI) has(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeUI) labels() []string {
	var out []string
	for _, c := range f.calls {
		if len(c) > 6 && c[:6] == "label " {
			out = append(out, c[6:])
		}
	}
	return out
}

type fakeHost struct {
	width, height int
	selection     []engine.Unit
	events        []engine.Event
}

func (h *fakeHost) Resolution() (int, int) { return h.width, h.height }

func (h *fakeHost) UnitSelection() []engine.Unit { return h.selection }

func (h *fakeHost) Emit(ev engine.Event) { h.events = append(h.events, ev) }
