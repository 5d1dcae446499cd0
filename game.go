package constrainedcamera

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/constrainedcamera/internal/config"
)

// doubleClickInterval is the longest gap between two left clicks that still
// counts as a double click.
const doubleClickInterval = 400 * time.Millisecond

// Game feeds Ebiten input to a Viewer and draws it.
type Game struct {
	viewer  *Viewer
	keys    []ebiten.Key
	configs <-chan *config.Config

	rotating, panning bool
	lastX, lastY      int
	lastClick         time.Time
}

func NewGame(v *Viewer) *Game {
	return &Game{viewer: v}
}

func (g *Game) Viewer() *Viewer {
	return g.viewer
}

// SetConfigUpdates makes the game apply every configuration received on ch.
func (g *Game) SetConfigUpdates(ch <-chan *config.Config) {
	g.configs = ch
}

func (g *Game) Update() error {
	g.pollConfig()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.viewer.KeyPressEvent(k)
	}
	if g.viewer.Quit() {
		return ebiten.Termination
	}

	g.handleMouse()
	return nil
}

func (g *Game) pollConfig() {
	select {
	case cfg := <-g.configs:
		g.viewer.ApplyConfig(cfg)
	default:
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.doubleClicked(time.Now()) {
			g.viewer.ShowEntireScene()
		}
		g.rotating = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panning = true
		g.lastX, g.lastY = x, y
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.rotating = false
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.panning = false
	}

	dx, dy := float64(x-g.lastX), float64(y-g.lastY)
	if dx != 0 || dy != 0 {
		switch {
		case g.rotating:
			g.viewer.MouseRotate(dx, dy)
		case g.panning:
			g.viewer.MousePan(dx, dy)
		}
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.viewer.MouseWheel(wy)
	}
}

// doubleClicked records a left click at now and reports whether it completes
// a double click. A third quick click starts a new pair.
func (g *Game) doubleClicked(now time.Time) bool {
	if !g.lastClick.IsZero() && now.Sub(g.lastClick) <= doubleClickInterval {
		g.lastClick = time.Time{}
		return true
	}
	g.lastClick = now
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.viewer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
