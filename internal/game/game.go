package game

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"leveledit/internal/catalog"
	"leveledit/internal/config"
	"leveledit/internal/editor"
	"leveledit/internal/engine"
	"leveledit/internal/rlui"
	"leveledit/internal/session"
	"leveledit/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	cfg     config.Config
	session *session.Session
	ui      *rlui.Context
	camera  EditorCamera
	watcher *catalog.Watcher
}

func New(cfg config.Config) *Game {
	return &Game{
		cfg: cfg,
		camera: EditorCamera{
			Position:  rl.Vector3{X: 0, Y: 12, Z: 16},
			Yaw:       -90,
			Pitch:     -35,
			MoveSpeed: 10.0,
		},
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(g.cfg.Window.FPS))
	rlui.InitStyle()

	scene, err := g.loadScene()
	if err != nil {
		return err
	}
	layout := editor.Layout{
		TabBarHeight:  float32(g.cfg.UI.TabBarHeight),
		LeftPaneWidth: float32(g.cfg.UI.LeftPaneWidth),
	}
	g.session = session.New(scene, layout, rl.GetScreenWidth(), rl.GetScreenHeight())
	if err := g.session.ReloadCatalog(g.cfg.Catalog.Path); err != nil {
		return err
	}

	if g.cfg.Catalog.Watch {
		w, err := catalog.NewWatcher(filepath.Dir(g.cfg.Catalog.Path))
		if err != nil {
			log.Printf("catalog: watch disabled: %v", err)
		} else {
			g.watcher = w
			defer g.watcher.Close()
		}
	}

	g.ui = rlui.New(rl.GetFontDefault())

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
		g.session.Frame()
	}
	return nil
}

// loadScene opens the configured scene file, starting empty if it does not
// exist yet.
func (g *Game) loadScene() (*engine.Scene, error) {
	scene, err := world.LoadScene(g.cfg.Scene.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("scene: %s not found, starting a new scene", g.cfg.Scene.Path)
		return engine.NewScene(filepath.Base(g.cfg.Scene.Path)), nil
	}
	return scene, err
}

func (g *Game) pollCatalog() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if filepath.Clean(path) != filepath.Clean(g.cfg.Catalog.Path) {
				continue
			}
			if err := g.session.ReloadCatalog(path); err != nil {
				log.Printf("catalog: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("catalog: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update(deltaTime float32) {
	g.pollCatalog()

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	// Ctrl+Z or Cmd+Z: undo
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		g.session.Undo()
	}

	// Ctrl+S: save scene
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		if err := g.session.Save(g.cfg.Scene.Path); err != nil {
			log.Printf("scene: %v", err)
		}
	}

	// Delete key mirrors the panel's Delete button
	if g.session.Mode() == editor.ModeSelect && rl.IsKeyPressed(rl.KeyDelete) {
		g.session.Emit(engine.Event{Kind: engine.EventObjectDeleteSelection})
	}

	g.camera.Update(deltaTime, ctrl)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !g.mouseInPanel() {
		g.handleViewportClick()
	}
}

func (g *Game) mouseInPanel() bool {
	mouse := rl.GetMousePosition()
	return mouse.X <= float32(g.cfg.UI.LeftPaneWidth) || mouse.Y <= float32(g.cfg.UI.TabBarHeight)
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.camera.RaylibCamera())
	rl.DrawGrid(40, 1)
	g.drawUnits()
	rl.EndMode3D()

	g.drawTabBar()
	g.session.Panel.Draw(g.ui)
	g.drawStatus()

	rl.EndDrawing()
}
