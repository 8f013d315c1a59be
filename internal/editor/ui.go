package editor

import (
	"image/color"

	"leveledit/internal/engine"
)

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCentered
	TextAlignRight
)

// UI is the immediate-mode widget toolkit a panel draws with. Every call is
// synchronous and reports user interaction for the current frame.
type UI interface {
	// Begin opens a window. End must be called even when Begin returns false.
	Begin(title string, bounds Rect) bool
	End()

	// LayoutRowDynamic splits the next row into cols equal columns.
	LayoutRowDynamic(height float32, cols int)
	// LayoutRowStatic lays out cols columns of a fixed width.
	LayoutRowStatic(height, itemWidth float32, cols int)

	LabelColoredWrap(text string, c color.RGBA)
	// OptionLabel draws a radio option and reports whether it is active.
	OptionLabel(text string, active bool) bool
	// SelectableLabel reports the row's selected state after this frame's input.
	SelectableLabel(text string, align TextAlign, selected bool) bool

	// BeginGroup opens a bordered scroll region in the current layout slot.
	// EndGroup is only called when BeginGroup returns true.
	BeginGroup(title string) bool
	EndGroup()

	ButtonLabel(text string) bool
}

// Host is the part of the editor a panel reads from and reports to.
type Host interface {
	Resolution() (width, height int)
	UnitSelection() []engine.Unit
	Emit(ev engine.Event)
}

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorUnitTitle = color.RGBA{R: 200, G: 200, B: 0, A: 255}
)
