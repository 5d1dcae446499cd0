package constrainedcamera

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/smasonuk/constrainedcamera/internal/config"
)

const helpString = `C o n s t r a i n e d C a m e r a

The camera frame can be constrained to limit the camera displacements.

Try the different translation (press G and T) and rotation
(D and R) constraints while moving the camera with the mouse.
The constraints can be defined with respect to various coordinates
systems : press Space to switch.

You can easily define your own constraints to create a specific
camera constraint.`

// KeyDescription documents a key binding in the help overlay.
type KeyDescription struct {
	Key         ebiten.Key
	Name        string
	Description string
}

var constraintKeys = []KeyDescription{
	{Key: ebiten.KeyG, Name: "G", Description: "Change translation constraint direction"},
	{Key: ebiten.KeyD, Name: "D", Description: "Change rotation constraint direction"},
	{Key: ebiten.KeySpace, Name: "Space", Description: "Change constraint reference"},
	{Key: ebiten.KeyT, Name: "T", Description: "Change translation constraint type"},
	{Key: ebiten.KeyR, Name: "R", Description: "Change rotation constraint type"},
}

var defaultKeys = []KeyDescription{
	{Key: ebiten.KeyA, Name: "A", Description: "Toggles the display of the world axis"},
	{Key: ebiten.KeyF, Name: "F", Description: "Toggles the display of the frame rate"},
	{Key: ebiten.KeyH, Name: "H", Description: "Toggles the help window"},
	{Key: ebiten.KeyEscape, Name: "Escape", Description: "Exits the application"},
}

// KeyBindings lists every key the viewer reacts to, constraint keys first.
func KeyBindings() []KeyDescription {
	out := make([]KeyDescription, 0, len(constraintKeys)+len(defaultKeys))
	out = append(out, constraintKeys...)
	return append(out, defaultKeys...)
}

// HelpString is the text shown at the top of the help overlay.
func HelpString() string {
	return helpString
}

// Viewer shows the ribbon through a camera whose frame is constrained by the
// active constraint of its ViewerState.
type Viewer struct {
	logger  *zap.Logger
	camera  *Camera
	scene   *Scene
	state   *ViewerState
	batcher *PolygonBatcher

	keyDescriptions []KeyDescription

	axisIsDrawn     bool
	fpsIsDisplayed  bool
	helpIsDisplayed bool
	quit            bool

	foreground color.RGBA
	background color.RGBA

	width, height int
	canvas        *ebiten.Image
	dirty         bool
}

// NewViewer builds the scene and the camera from cfg and runs Init. A nil
// logger disables logging.
func NewViewer(cfg *config.Config, logger *zap.Logger) (*Viewer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	fg, _ := cfg.ForegroundColor()
	bg, _ := cfg.BackgroundColor()

	v := &Viewer{
		logger:         logger,
		camera:         NewCamera(),
		scene:          NewScene(),
		batcher:        NewPolygonBatcher(),
		fpsIsDisplayed: cfg.Display.FPSIsDisplayed,
		foreground:     fg,
		background:     bg,
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
		dirty:          true,
	}

	ribbon := NewRibbon(cfg.Scene.RibbonScale)
	ribbon.SetDrawOutlines(cfg.Scene.Outlines)
	v.scene.AddObject(ribbon, 0, 0, 0)

	v.camera.RotationSensitivity = cfg.Camera.RotationSensitivity
	v.camera.TranslationSensitivity = cfg.Camera.TranslationSensitivity
	v.camera.WheelSensitivity = cfg.Camera.WheelSensitivity
	v.camera.SetSceneRadius(v.scene.Radius())
	r := v.camera.SceneRadius()
	v.camera.SetPosition(0, 0.8*r, 2.6*r)
	v.camera.LookAt(mgl64.Vec3{})

	v.Init(cfg.StateFile)
	return v, nil
}

// Init restores the saved state, installs the two constraints and the key
// descriptions and opens the help overlay.
func (v *Viewer) Init(stateFile string) {
	if stateFile != "" {
		restored, err := v.RestoreStateFromFile(stateFile)
		switch {
		case err != nil:
			v.logger.Warn("could not restore viewer state", zap.String("file", stateFile), zap.Error(err))
		case restored:
			v.logger.Info("restored viewer state", zap.String("file", stateFile))
		}
	}

	v.state = NewViewerState(v.camera.Frame())

	v.SetAxisIsDrawn(true)

	v.keyDescriptions = nil
	for _, k := range KeyBindings() {
		v.SetKeyDescription(k.Key, k.Name, k.Description)
	}

	v.Help()

	v.logger.Info("viewer initialized",
		zap.Int("faces", v.scene.objects[0].FaceCount()),
		zap.Float64("sceneRadius", v.camera.SceneRadius()))
}

// ApplyConfig takes the colors, camera sensitivities and outline setting of a
// reloaded configuration. Window and state file settings only apply at startup.
func (v *Viewer) ApplyConfig(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		v.logger.Warn("ignoring invalid config", zap.Error(err))
		return
	}
	v.foreground, _ = cfg.ForegroundColor()
	v.background, _ = cfg.BackgroundColor()

	v.camera.RotationSensitivity = cfg.Camera.RotationSensitivity
	v.camera.TranslationSensitivity = cfg.Camera.TranslationSensitivity
	v.camera.WheelSensitivity = cfg.Camera.WheelSensitivity

	for _, obj := range v.scene.objects {
		obj.SetDrawOutlines(cfg.Scene.Outlines)
	}

	v.logger.Info("config applied")
	v.update()
}

func (v *Viewer) Camera() *Camera {
	return v.camera
}

func (v *Viewer) State() *ViewerState {
	return v.state
}

// SetKeyDescription adds or replaces the description of key.
func (v *Viewer) SetKeyDescription(key ebiten.Key, name, description string) {
	for i := range v.keyDescriptions {
		if v.keyDescriptions[i].Key == key {
			v.keyDescriptions[i].Name = name
			v.keyDescriptions[i].Description = description
			return
		}
	}
	v.keyDescriptions = append(v.keyDescriptions, KeyDescription{Key: key, Name: name, Description: description})
}

func (v *Viewer) KeyDescriptions() []KeyDescription {
	return v.keyDescriptions
}

func (v *Viewer) SetAxisIsDrawn(drawn bool) {
	v.axisIsDrawn = drawn
	v.update()
}

func (v *Viewer) AxisIsDrawn() bool {
	return v.axisIsDrawn
}

func (v *Viewer) FPSIsDisplayed() bool {
	return v.fpsIsDisplayed
}

func (v *Viewer) HelpIsDisplayed() bool {
	return v.helpIsDisplayed
}

// Help opens the help overlay.
func (v *Viewer) Help() {
	v.helpIsDisplayed = true
	v.update()
}

// Quit reports whether an exit was requested.
func (v *Viewer) Quit() bool {
	return v.quit
}

// KeyPressEvent handles the constraint keys and hands every other key to the
// default bindings. Whatever the key, the selected axes are then applied to
// the active constraint.
func (v *Viewer) KeyPressEvent(key ebiten.Key) {
	if v.state.HandleKey(key, v.camera.Frame()) {
		active := v.state.Active()
		v.logger.Debug("constraint key",
			zap.Stringer("key", key),
			zap.Int("activeConstraint", v.state.ActiveConstraint()),
			zap.Stringer("translation", active.TranslationConstraintType()),
			zap.Stringer("rotation", active.RotationConstraintType()),
			zap.Int("transDir", v.state.TransDir()),
			zap.Int("rotDir", v.state.RotDir()))
	} else {
		v.defaultKeyPressEvent(key)
	}

	v.state.ApplyDirections()
	v.update()
}

func (v *Viewer) defaultKeyPressEvent(key ebiten.Key) {
	switch key {
	case ebiten.KeyA:
		v.axisIsDrawn = !v.axisIsDrawn
	case ebiten.KeyF:
		v.fpsIsDisplayed = !v.fpsIsDisplayed
	case ebiten.KeyH:
		v.helpIsDisplayed = !v.helpIsDisplayed
	case ebiten.KeyEscape:
		v.logger.Info("exit requested")
		v.quit = true
	}
}

func (v *Viewer) MouseRotate(dx, dy float64) {
	v.camera.MouseRotate(dx, dy)
	v.update()
}

func (v *Viewer) MousePan(dx, dy float64) {
	v.camera.MousePan(dx, dy)
	v.update()
}

func (v *Viewer) MouseWheel(delta float64) {
	v.camera.MouseWheel(delta)
	v.update()
}

// ShowEntireScene backs the camera away from its pivot until the whole scene
// is in view.
func (v *Viewer) ShowEntireScene() {
	v.camera.ShowEntireScene()
	v.update()
}

// update requests a redraw of the scene.
func (v *Viewer) update() {
	v.dirty = true
}

// NeedsRedraw reports whether the cached scene image is stale.
func (v *Viewer) NeedsRedraw() bool {
	return v.dirty
}

func (v *Viewer) Resize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.update()
}

func (v *Viewer) Size() (int, int) {
	return v.width, v.height
}

// Draw renders the scene into a cached image when a redraw was requested and
// copies it to screen.
func (v *Viewer) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if v.canvas == nil || v.canvas.Bounds().Dx() != w || v.canvas.Bounds().Dy() != h {
		if v.canvas != nil {
			v.canvas.Deallocate()
		}
		v.canvas = ebiten.NewImage(w, h)
		v.dirty = true
	}

	if v.dirty {
		v.draw(v.canvas)
		v.dirty = false
	}
	screen.DrawImage(v.canvas, nil)

	if v.fpsIsDisplayed {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), w-90, 4)
	}
}

func (v *Viewer) draw(dst *ebiten.Image) {
	b := dst.Bounds()
	dst.Fill(v.background)

	v.scene.PaintObjects(v.batcher, v.camera, float32(b.Dx()), float32(b.Dy()))
	if ce := v.logger.Check(zap.DebugLevel, "scene redrawn"); ce != nil {
		ce.Write(zap.Int("polygons", v.batcher.PolygonCount()))
	}
	v.batcher.Flush(dst)

	if v.axisIsDrawn {
		DrawAxis(dst, v.camera, v.camera.SceneRadius())
	}

	v.displayText(dst)

	if v.helpIsDisplayed {
		v.drawHelp(dst)
	}
}

func (v *Viewer) displayText(dst *ebiten.Image) {
	b := dst.Bounds()
	for _, line := range constraintOverlay(v.state, b.Dx(), b.Dy()) {
		drawText(dst, line.X, line.Y, line.Text, v.foreground)
	}
}

func (v *Viewer) drawHelp(dst *ebiten.Image) {
	lines := helpPanel(HelpString(), v.keyDescriptions)
	lineHeight := 16
	b := dst.Bounds()

	panelW := float32(b.Dx() - 80)
	panelH := float32(len(lines)*lineHeight + 20)
	vector.DrawFilledRect(dst, 40, 40, panelW, panelH, color.RGBA{A: 190}, false)

	for i, line := range lines {
		drawText(dst, 52, 62+i*lineHeight, line, v.foreground)
	}
}
