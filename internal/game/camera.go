package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

// Update flies the camera: right-click + drag to look, right-click + WASD to
// move, Shift + wheel to change speed. Movement keys are ignored while ctrl
// is held.
func (c *EditorCamera) Update(deltaTime float32, ctrl bool) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		c.Yaw += mouseDelta.X * 0.1
		c.Pitch -= mouseDelta.Y * 0.1
		if c.Pitch > 89 {
			c.Pitch = 89
		}
		if c.Pitch < -89 {
			c.Pitch = -89
		}

		if !ctrl {
			forward, right := c.directions()
			speed := c.MoveSpeed * deltaTime

			if rl.IsKeyDown(rl.KeyW) {
				c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, speed))
			}
			if rl.IsKeyDown(rl.KeyS) {
				c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, -speed))
			}
			if rl.IsKeyDown(rl.KeyA) {
				c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, speed))
			}
			if rl.IsKeyDown(rl.KeyD) {
				c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, -speed))
			}
			if rl.IsKeyDown(rl.KeyE) {
				c.Position.Y += speed
			}
			if rl.IsKeyDown(rl.KeyQ) {
				c.Position.Y -= speed
			}
		}
	}

	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		c.MoveSpeed += scroll * 2.0
		if c.MoveSpeed < 1.0 {
			c.MoveSpeed = 1.0
		}
		if c.MoveSpeed > 100.0 {
			c.MoveSpeed = 100.0
		}
	}
}

func (c *EditorCamera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (c *EditorCamera) RaylibCamera() rl.Camera3D {
	forward, _ := c.directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
