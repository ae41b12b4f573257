package app

import (
	"context"
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/config"
	"xrpanel/internal/engine"
	"xrpanel/internal/input"
	"xrpanel/internal/interact"
	"xrpanel/internal/widgets"
	"xrpanel/internal/xr"
)

// App wires the interaction core to a raylib window: a camera-projected
// pointer and touch source, two simulated controllers behind a session,
// and a small panel of widgets consuming the capability contract.
type App struct {
	cfg config.Config

	scene   *engine.Scene
	system  *interact.System
	session *xr.Session
	pointer *input.Pointer
	touch   *input.Touch
	guard   *interact.Guard

	camera rl.Camera3D

	buttons []*widgets.Button
	toggle  *widgets.Toggle
	panel   *widgets.StatusPanel

	statusCtx    context.Context
	statusCancel context.CancelFunc

	lastTouches int
}

func New(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Run opens the window, builds the scene and drives the fixed tick order:
// sample input, update the interaction system, update widgets, draw.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(a.cfg.Window.FPS)

	if err := a.build(); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	defer a.teardown()

	a.scene.Start()

	for !rl.WindowShouldClose() {
		a.sampleInput()
		a.system.Update(time.Now())
		a.scene.Update(rl.GetFrameTime())
		a.draw()
	}
	return nil
}

func (a *App) build() error {
	a.scene = engine.NewScene("Panel")
	a.guard = interact.NewGuard()

	a.system = interact.NewSystem(interact.NewRegistry())
	a.system.SettleDelay = a.cfg.Interact.SettleDelay()
	a.system.Arbiter.MaxDistance = float32(a.cfg.Interact.MaxRayDistance)

	a.camera = rl.Camera3D{
		Position:   rl.Vector3{Y: 1.6, Z: 3},
		Target:     rl.Vector3{Y: 1.2, Z: -4},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	projector := input.NewCameraProjector(func() rl.Camera3D { return a.camera })
	a.pointer = input.NewPointer(projector)
	a.touch = input.NewTouch(projector)

	c0 := xr.NewController(interact.SourceController0)
	c1 := xr.NewController(interact.SourceController1)
	c0.Grip.Transform.Position = rl.Vector3{X: -0.3, Y: 1.3, Z: 2}
	c1.Grip.Transform.Position = rl.Vector3{X: 0.3, Y: 1.3, Z: 2}
	a.scene.AddNode(c0.Grip)
	a.scene.AddNode(c1.Grip)

	a.session = xr.NewSession(a.system, c0, c1)

	selector := &input.Selector{
		SessionActive: a.session.Active,
		Controller0:   c0.Source(),
		Controller1:   c1.Source(),
		Pointer:       a.pointer,
		Touch:         a.touch,
	}
	a.system.Sources = selector.Sources

	return a.buildWidgets()
}

func (a *App) buildWidgets() error {
	style := widgets.DefaultStyle()
	style.Surface = makeLabelSurface

	cooldown := a.cfg.Interact.DebounceCooldown()
	size := rl.Vector3{X: 1.4, Y: 0.8, Z: 0.15}

	labels := []string{"Start", "Stop"}
	for i, label := range labels {
		btn, err := widgets.NewButton(label, size, style, a.system.Registry, a.guard, cooldown)
		if err != nil {
			return err
		}
		node := btn.Target().Node()
		node.Transform.Position = rl.Vector3{X: float32(i)*1.8 - 0.9, Y: 1.8, Z: -4}
		a.scene.AddNode(node)
		a.buttons = append(a.buttons, btn)
	}

	tg, err := widgets.NewToggle("Lights", size, style, a.system.Registry, a.guard, cooldown)
	if err != nil {
		return err
	}
	tg.Target().Node().Transform.Position = rl.Vector3{X: -0.9, Y: 0.8, Z: -4}
	a.scene.AddNode(tg.Target().Node())
	a.toggle = tg

	panel, err := widgets.NewStatusPanel("Link", size, style, a.system.Registry)
	if err != nil {
		return err
	}
	panel.Target().Node().Transform.Position = rl.Vector3{X: 0.9, Y: 0.8, Z: -4}
	a.scene.AddNode(panel.Target().Node())
	a.panel = panel

	if a.cfg.Status.Enabled {
		a.statusCtx, a.statusCancel = context.WithCancel(context.Background())
		// Simulated backend: the link condition flips every five seconds.
		panel.Bind(a.statusCtx, a.system, a.cfg.Status.Interval(),
			func(ctx context.Context) (bool, error) {
				return time.Now().Unix()/5%2 == 0, nil
			})
	}
	return nil
}

func (a *App) teardown() {
	if a.statusCancel != nil {
		a.statusCancel()
	}
	if a.panel != nil {
		a.panel.Unbind()
	}
	a.session.End()
}

// makeLabelSurface allocates the render texture a widget draws its label
// into. A zero GPU id fails widget construction upstream.
func makeLabelSurface(width, height int32) rl.RenderTexture2D {
	tex := rl.LoadRenderTexture(width, height)
	if tex.ID == 0 {
		return tex
	}
	rl.BeginTextureMode(tex)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
	return tex
}

func (a *App) sampleInput() {
	// Desktop pointer.
	if rl.IsCursorOnScreen() {
		a.pointer.Move(rl.GetMousePosition())
	} else {
		a.pointer.Leave()
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.pointer.Press()
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.pointer.Release()
	}

	// Touch, when the platform reports it.
	touches := int(rl.GetTouchPointCount())
	if touches > 0 {
		if a.lastTouches == 0 {
			a.touch.Begin(rl.GetTouchPosition(0))
		} else {
			a.touch.Drag(rl.GetTouchPosition(0))
		}
	} else if a.lastTouches > 0 {
		a.touch.End()
	}
	a.lastTouches = touches

	a.sampleSimulatedXR()
}

// sampleSimulatedXR drives the controllers from the keyboard so the
// session paths can be exercised without a headset. Tab toggles the
// session, F1/F2 attach and detach the controllers, arrows steer
// controller 0, enter is its select action.
func (a *App) sampleSimulatedXR() {
	c0 := a.session.Controller(0)
	c1 := a.session.Controller(1)

	if rl.IsKeyPressed(rl.KeyF1) {
		toggleAttached(c0)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		toggleAttached(c1)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		if a.session.Active() {
			a.session.End()
		} else if err := a.session.Start(); err != nil {
			// Fail-fast policy: the session is already torn down, we only
			// surface the message.
			fmt.Printf("session rejected: %v\n", err)
		}
	}

	if !a.session.Active() {
		return
	}

	turn := 60 * rl.GetFrameTime()
	if rl.IsKeyDown(rl.KeyLeft) {
		c0.Grip.Transform.Rotation.Y += turn
	}
	if rl.IsKeyDown(rl.KeyRight) {
		c0.Grip.Transform.Rotation.Y -= turn
	}
	if rl.IsKeyDown(rl.KeyUp) {
		c0.Grip.Transform.Rotation.X += turn
	}
	if rl.IsKeyDown(rl.KeyDown) {
		c0.Grip.Transform.Rotation.X -= turn
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		c0.SelectStart()
	}
	if rl.IsKeyReleased(rl.KeyEnter) {
		c0.SelectEnd()
	}
}

func toggleAttached(c *xr.Controller) {
	if c.IsAttached() {
		c.Detach()
	} else {
		c.Attach()
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 18, 24, 255))

	rl.BeginMode3D(a.camera)
	rl.DrawGrid(12, 1)

	for _, btn := range a.buttons {
		drawWidgetCube(btn.Target().Node(), btn.Color())
		if tex, ok := btn.LabelTexture(); ok {
			pos := btn.Target().Node().WorldPosition()
			pos.Z += 0.1
			rl.DrawBillboard(a.camera, tex.Texture, pos, 1.2, rl.White)
		}
	}
	drawWidgetCube(a.toggle.Target().Node(), a.toggle.Color())
	drawWidgetCube(a.panel.Target().Node(), a.panel.Color())

	a.drawController(a.session.Controller(0))
	a.drawController(a.session.Controller(1))

	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func drawWidgetCube(node *engine.Node, color rl.Color) {
	box := engine.GetComponent[*interact.BoxCollider](node)
	if box == nil {
		return
	}
	pos := node.WorldPosition()
	rl.DrawCube(pos, box.Size.X, box.Size.Y, box.Size.Z, color)
	rl.DrawCubeWires(pos, box.Size.X, box.Size.Y, box.Size.Z, rl.NewColor(140, 140, 160, 255))
}

func (a *App) drawController(c *xr.Controller) {
	if c == nil || !c.Visible() {
		return
	}
	origin := c.Grip.WorldPosition()
	rl.DrawSphere(origin, 0.04, rl.SkyBlue)
	rl.DrawRay(rl.NewRay(origin, c.Grip.Forward()), rl.NewColor(120, 200, 255, 160))
	rl.DrawSphere(c.ReticleNode.WorldPosition(), 0.05, rl.Yellow)
}

func (a *App) drawHUD() {
	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 260, Height: 150}, "Interaction")

	row := float32(40)
	line := func(text string) {
		gui.Label(rl.Rectangle{X: 20, Y: row, Width: 240, Height: 18}, text)
		row += 20
	}

	for _, btn := range a.buttons {
		line(fmt.Sprintf("%s: %s", btn.Label, btn.State()))
	}
	line(fmt.Sprintf("%s: %s (on=%v)", a.toggle.Label, a.toggle.State(), a.toggle.On))
	line(fmt.Sprintf("%s: %s", a.panel.Label, a.panel.State()))
	line(fmt.Sprintf("session=%v controllers=%d", a.session.Active(), a.session.ControllerCount()))
}
