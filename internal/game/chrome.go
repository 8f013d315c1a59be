package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorTabBar    = rl.NewColor(10, 10, 15, 255)
	colorTabActive = rl.NewColor(108, 99, 255, 255)
	colorTabText   = rl.NewColor(255, 255, 255, 255)
	colorStatus    = rl.NewColor(200, 200, 208, 255)
)

// drawTabBar draws the strip above the left pane. Objects is the only tab.
func (g *Game) drawTabBar() {
	h := int32(g.cfg.UI.TabBarHeight)
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), h, colorTabBar)

	tabW := int32(90)
	rl.DrawRectangle(4, 4, tabW, h-4, colorTabActive)
	rl.DrawText("Objects", 14, (h-16)/2+2, 16, colorTabText)

	info := fmt.Sprintf("%s  |  %d units  |  %s mode", g.session.Scene.Name, g.session.Scene.Len(), g.session.Mode())
	rl.DrawText(info, int32(g.cfg.UI.LeftPaneWidth)+12, (h-16)/2, 16, colorStatus)
}

func (g *Game) drawStatus() {
	msg := g.session.Status()
	if msg == "" {
		return
	}
	x := int32(g.cfg.UI.LeftPaneWidth) + 12
	y := int32(rl.GetScreenHeight()) - 28
	rl.DrawText(msg, x, y, 18, colorStatus)
}
