package rlui

import (
	"image/color"
	"strings"

	"leveledit/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowPadding = 8
	itemSpacing   = 4
	fontSize      = 16
	radioRadius   = 6
)

type row struct {
	y         float32
	height    float32
	itemWidth float32 // 0 for dynamic rows
	cols      int
	col       int
}

// region is the area rows are laid out in: the window body or a group view.
type region struct {
	x, width float32
	cursorY  float32
	row      row
	clip     rl.Rectangle
}

type groupState struct {
	scroll        rl.Vector2
	contentHeight float32
}

// Context draws editor.UI widgets with raylib and raygui. It holds per-group
// scroll state across frames, so keep one Context for the lifetime of the
// window.
type Context struct {
	font   rl.Font
	groups map[string]*groupState

	cur    region
	outer  region
	group  *groupState
	startY float32
}

var _ editor.UI = (*Context)(nil)

func New(font rl.Font) *Context {
	return &Context{
		font:   font,
		groups: make(map[string]*groupState),
	}
}

func toRect(r editor.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (c *Context) Begin(title string, bounds editor.Rect) bool {
	b := toRect(bounds)
	rl.DrawRectangleRec(b, colorBgPanel)
	rl.DrawRectangleLinesEx(b, 1, colorBorder)

	c.cur = region{
		x:       b.X + windowPadding,
		width:   b.Width - 2*windowPadding,
		cursorY: b.Y + windowPadding,
		clip:    b,
	}
	return true
}

func (c *Context) End() {
	c.cur = region{}
}

func (c *Context) LayoutRowDynamic(height float32, cols int) {
	c.startRow(height, 0, cols)
}

func (c *Context) LayoutRowStatic(height, itemWidth float32, cols int) {
	c.startRow(height, itemWidth, cols)
}

func (c *Context) startRow(height, itemWidth float32, cols int) {
	if cols < 1 {
		cols = 1
	}
	c.cur.row = row{y: c.cur.cursorY, height: height, itemWidth: itemWidth, cols: cols}
	c.cur.cursorY += height + itemSpacing
}

// slot returns the bounds of the next widget, wrapping onto a fresh row with
// the same parameters when the current one is full.
func (c *Context) slot() rl.Rectangle {
	r := &c.cur.row
	if r.cols == 0 {
		c.startRow(fontSize+4, 0, 1)
	} else if r.col >= r.cols {
		c.startRow(r.height, r.itemWidth, r.cols)
	}
	w := r.itemWidth
	if w == 0 {
		w = (c.cur.width - itemSpacing*float32(r.cols-1)) / float32(r.cols)
	}
	x := c.cur.x + float32(r.col)*(w+itemSpacing)
	r.col++
	return rl.Rectangle{X: x, Y: r.y, Width: w, Height: r.height}
}

// clicked reports a left click on bounds that is not clipped away.
func (c *Context) clicked(bounds rl.Rectangle) bool {
	return c.hovered(bounds) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (c *Context) hovered(bounds rl.Rectangle) bool {
	mouse := rl.GetMousePosition()
	return rl.CheckCollisionPointRec(mouse, bounds) && rl.CheckCollisionPointRec(mouse, c.cur.clip)
}

func (c *Context) drawText(text string, x, y float32, col color.RGBA) {
	if c.font.Texture.ID > 0 {
		rl.DrawTextEx(c.font, text, rl.Vector2{X: x, Y: y}, fontSize, 0, col)
	} else {
		rl.DrawText(text, int32(x), int32(y), fontSize, col)
	}
}

func (c *Context) measure(text string) float32 {
	if c.font.Texture.ID > 0 {
		return rl.MeasureTextEx(c.font, text, fontSize, 0).X
	}
	return float32(rl.MeasureText(text, fontSize))
}

func (c *Context) LabelColoredWrap(text string, col color.RGBA) {
	b := c.slot()
	y := b.Y
	for _, line := range c.wrap(text, b.Width) {
		if y+fontSize > b.Y+b.Height+1 {
			break
		}
		c.drawText(line, b.X, y, col)
		y += fontSize + 2
	}
}

// wrap breaks text at spaces so each line fits width. A single word wider
// than width gets a line of its own.
func (c *Context) wrap(text string, width float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if c.measure(line+" "+w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func (c *Context) OptionLabel(text string, active bool) bool {
	b := c.slot()
	center := rl.Vector2{X: b.X + radioRadius + 2, Y: b.Y + b.Height/2}

	ring := colorBorder
	if c.hovered(b) {
		ring = colorAccentLight
	}
	rl.DrawCircleV(center, radioRadius, colorBgElement)
	rl.DrawCircleLinesV(center, radioRadius, ring)
	if active {
		rl.DrawCircleV(center, radioRadius-3, colorAccent)
	}
	c.drawText(text, b.X+2*radioRadius+8, b.Y+(b.Height-fontSize)/2, colorTextSecondary)

	return active || c.clicked(b)
}

func (c *Context) SelectableLabel(text string, align editor.TextAlign, selected bool) bool {
	b := c.slot()
	hovered := c.hovered(b)

	txtColor := colorTextSecondary
	if selected {
		rl.DrawRectangleRec(b, colorSelection)
		rl.DrawRectangleRec(rl.Rectangle{X: b.X, Y: b.Y, Width: 3, Height: b.Height}, colorAccent)
		txtColor = colorAccentLight
	} else if hovered {
		rl.DrawRectangleRec(b, colorBgHover)
	}

	x := b.X + 8
	switch align {
	case editor.TextAlignCentered:
		x = b.X + (b.Width-c.measure(text))/2
	case editor.TextAlignRight:
		x = b.X + b.Width - c.measure(text) - 8
	}
	c.drawText(text, x, b.Y+(b.Height-fontSize)/2, txtColor)

	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return !selected
	}
	return selected
}

func (c *Context) BeginGroup(title string) bool {
	b := c.slot()
	g, ok := c.groups[title]
	if !ok {
		g = &groupState{}
		c.groups[title] = g
	}

	content := rl.Rectangle{X: b.X, Y: b.Y, Width: b.Width - 14, Height: g.contentHeight}
	var view rl.Rectangle
	gui.ScrollPanel(b, "", content, &g.scroll, &view)

	c.outer = c.cur
	c.group = g
	c.startY = view.Y + windowPadding + g.scroll.Y
	c.cur = region{
		x:       view.X + windowPadding + g.scroll.X,
		width:   view.Width - 2*windowPadding,
		cursorY: c.startY,
		clip:    view,
	}
	rl.BeginScissorMode(int32(view.X), int32(view.Y), int32(view.Width), int32(view.Height))
	return true
}

func (c *Context) EndGroup() {
	rl.EndScissorMode()
	if c.group != nil {
		c.group.contentHeight = c.cur.cursorY - c.startY + 2*windowPadding
	}
	c.cur = c.outer
	c.group = nil
}

func (c *Context) ButtonLabel(text string) bool {
	return gui.Button(c.slot(), text)
}
