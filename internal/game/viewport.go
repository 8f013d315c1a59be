package game

import (
	"leveledit/internal/catalog"
	"leveledit/internal/editor"
	"leveledit/internal/engine"
	"leveledit/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const pickDistance = 1000

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var (
	colorSelected = rl.NewColor(167, 139, 250, 255)
	colorUnknown  = rl.NewColor(255, 0, 255, 255)
)

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.Gray
}

// entryFor finds the catalog type a unit was placed as. Units whose type has
// been removed from the catalog draw as magenta cubes.
func (g *Game) entryFor(u engine.Unit) (catalog.Entry, bool) {
	c := g.session.Catalog()
	if c == nil {
		return catalog.Entry{}, false
	}
	for _, e := range c.Entries {
		if e.Name == u.Name {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

func (g *Game) drawUnits() {
	scene := g.session.Scene
	for _, u := range scene.Units() {
		entry, known := g.entryFor(u)
		col := colorUnknown
		if known {
			col = lookupColor(entry.Color)
		}

		rl.PushMatrix()
		rl.Translatef(u.Position[0], u.Position[1], u.Position[2])
		rl.Rotatef(u.Rotation[0], 1, 0, 0)
		rl.Rotatef(u.Rotation[1], 0, 1, 0)
		rl.Rotatef(u.Rotation[2], 0, 0, 1)
		rl.Scalef(u.Scale[0], u.Scale[1], u.Scale[2])

		center := rl.Vector3{Y: 0.5}
		switch entry.Mesh {
		case "sphere":
			rl.DrawSphere(center, 0.5, col)
		case "cylinder":
			rl.DrawCylinder(rl.Vector3{}, 0.5, 0.5, 1, 16, col)
		default:
			rl.DrawCubeV(center, rl.Vector3{X: 1, Y: 1, Z: 1}, col)
		}
		if scene.IsSelected(u.ID) {
			rl.DrawCubeWiresV(center, rl.Vector3{X: 1.05, Y: 1.05, Z: 1.05}, colorSelected)
		}
		rl.PopMatrix()
	}
}

func (g *Game) handleViewportClick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.camera.RaylibCamera())

	switch g.session.Mode() {
	case editor.ModePlace:
		if pos, ok := physics.RaycastGround(ray.Position, ray.Direction); ok {
			g.session.PlaceAt([3]float32{pos.X, 0, pos.Z})
		}
	case editor.ModeSelect:
		additive := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		if hit, ok := physics.Raycast(g.session.Scene.Units(), ray.Position, ray.Direction, pickDistance); ok {
			g.session.ClickUnit(hit.Unit.ID, additive)
		} else {
			g.session.ClickEmpty(additive)
		}
	}
}
