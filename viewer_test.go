package constrainedcamera

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smasonuk/constrainedcamera/internal/config"
)

func newTestViewer(t *testing.T, stateFile string) *Viewer {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.StateFile = stateFile
	v, err := NewViewer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return v
}

func TestNewViewerInitializes(t *testing.T) {
	v := newTestViewer(t, "")

	assert.Equal(t, 0, v.State().ActiveConstraint())
	assert.Equal(t, 0, v.State().TransDir())
	assert.Equal(t, 0, v.State().RotDir())
	assert.Same(t, v.State().Constraint(0), v.Camera().Frame().Constraint())

	assert.True(t, v.AxisIsDrawn())
	assert.True(t, v.HelpIsDisplayed())
	assert.False(t, v.FPSIsDisplayed())
	assert.True(t, v.NeedsRedraw())
	assert.Equal(t, KeyBindings(), v.KeyDescriptions())

	// The first inner vertex of the ribbon is the farthest from the origin.
	assert.InDelta(t, 100*math.Sqrt(1.25), v.Camera().SceneRadius(), 1e-6)
}

func TestNewViewerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Width = 0
	_, err := NewViewer(cfg, nil)
	assert.Error(t, err)
}

func TestKeyBindings(t *testing.T) {
	var names []string
	for _, k := range KeyBindings() {
		names = append(names, k.Name)
		assert.NotEmpty(t, k.Description)
	}
	assert.Equal(t, []string{"G", "D", "Space", "T", "R", "A", "F", "H", "Escape"}, names)
}

func TestSetKeyDescriptionReplaces(t *testing.T) {
	v := newTestViewer(t, "")
	n := len(v.KeyDescriptions())

	v.SetKeyDescription(ebiten.KeyG, "G", "something else")
	assert.Len(t, v.KeyDescriptions(), n)
	assert.Equal(t, "something else", v.KeyDescriptions()[0].Description)

	v.SetKeyDescription(ebiten.KeyP, "P", "new")
	assert.Len(t, v.KeyDescriptions(), n+1)
}

func TestDefaultKeys(t *testing.T) {
	v := newTestViewer(t, "")

	v.KeyPressEvent(ebiten.KeyA)
	assert.False(t, v.AxisIsDrawn())
	v.KeyPressEvent(ebiten.KeyF)
	assert.True(t, v.FPSIsDisplayed())
	v.KeyPressEvent(ebiten.KeyH)
	assert.False(t, v.HelpIsDisplayed())

	assert.False(t, v.Quit())
	v.KeyPressEvent(ebiten.KeyEscape)
	assert.True(t, v.Quit())
}

func TestEveryKeyReappliesDirectionsAndRedraws(t *testing.T) {
	v := newTestViewer(t, "")
	active := v.State().Active()

	v.dirty = false
	active.SetTranslationConstraintDirection(mgl64.Vec3{1, 1, 1})
	active.SetRotationConstraintDirection(mgl64.Vec3{0, 0, 1})
	v.KeyPressEvent(ebiten.KeyQ)
	assert.True(t, v.NeedsRedraw(), "unbound key")
	assert.Equal(t, axisDirection(v.State().TransDir()), active.TranslationConstraintDirection())
	assert.Equal(t, axisDirection(v.State().RotDir()), active.RotationConstraintDirection())

	v.dirty = false
	active.SetTranslationConstraintDirection(mgl64.Vec3{0, 0, 1})
	v.KeyPressEvent(ebiten.KeyA)
	assert.True(t, v.NeedsRedraw(), "default key")
	assert.Equal(t, axisDirection(v.State().TransDir()), active.TranslationConstraintDirection())

	v.dirty = false
	v.KeyPressEvent(ebiten.KeyT)
	assert.True(t, v.NeedsRedraw(), "constraint key")
}

func TestShowEntireSceneRedraws(t *testing.T) {
	v := newTestViewer(t, "")
	v.MouseWheel(5)
	v.dirty = false

	v.ShowEntireScene()
	assert.True(t, v.NeedsRedraw())
	assert.InDelta(t, 2.8*v.Camera().SceneRadius(), v.Camera().Position().Sub(v.Camera().Pivot()).Len(), 1e-6)
}

func TestConstraintKeysGoThroughViewer(t *testing.T) {
	v := newTestViewer(t, "")

	v.KeyPressEvent(ebiten.KeyG)
	assert.Equal(t, 1, v.State().TransDir())
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, v.State().Active().TranslationConstraintDirection())

	v.KeyPressEvent(ebiten.KeySpace)
	assert.Equal(t, 1, v.State().ActiveConstraint())
	assert.Same(t, v.State().Constraint(1), v.Camera().Frame().Constraint())
	assert.True(t, v.AxisIsDrawn(), "constraint keys do not reach the default handler")
}

func TestMouseRequestsRedraw(t *testing.T) {
	v := newTestViewer(t, "")
	v.dirty = false

	v.MouseWheel(1)
	assert.True(t, v.NeedsRedraw())

	v.dirty = false
	v.Resize(v.width, v.height)
	assert.False(t, v.NeedsRedraw(), "same size")
	v.Resize(320, 200)
	assert.True(t, v.NeedsRedraw())
}

func TestForbiddenTranslationFreezesCamera(t *testing.T) {
	v := newTestViewer(t, "")
	start := v.Camera().Position()

	// FREE -> PLANE -> AXIS -> FORBIDDEN
	for i := 0; i < 3; i++ {
		v.KeyPressEvent(ebiten.KeyT)
	}
	require.Equal(t, FORBIDDEN, v.State().Active().TranslationConstraintType())

	v.MousePan(50, -20)
	v.MouseWheel(3)
	assert.Equal(t, start, v.Camera().Position())
}

func TestHelpString(t *testing.T) {
	help := HelpString()
	assert.True(t, strings.HasPrefix(help, "C o n s t r a i n e d C a m e r a"))
	assert.Contains(t, help, "press G and T")
	assert.Contains(t, help, "press Space to switch")
}

func TestStatePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "viewer.yaml")

	v := newTestViewer(t, path)
	v.Camera().SetPosition(10, 20, 30)
	v.Camera().LookAt(mgl64.Vec3{})
	v.KeyPressEvent(ebiten.KeyF)
	v.KeyPressEvent(ebiten.KeyA)
	v.Resize(1024, 768)
	orientation := v.Camera().Frame().Orientation()

	require.NoError(t, v.SaveStateToFile(path))

	restored := newTestViewer(t, path)
	assertVecInDelta(t, mgl64.Vec3{10, 20, 30}, restored.Camera().Position())
	assertQuatInDelta(t, orientation, restored.Camera().Frame().Orientation())
	assert.True(t, restored.FPSIsDisplayed())
	assert.True(t, restored.AxisIsDrawn(), "the axis is turned on at startup")
	w, h := restored.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestRestoreStateFromMissingFile(t *testing.T) {
	v := newTestViewer(t, "")
	restored, err := v.RestoreStateFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.False(t, restored)
}

func TestRestoreStateFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera: [oops"), 0644))

	v := newTestViewer(t, "")
	before := v.Camera().Position()
	_, err := v.RestoreStateFromFile(path)
	assert.Error(t, err)
	assert.Equal(t, before, v.Camera().Position())

	// A bad state file does not prevent the viewer from starting.
	started := newTestViewer(t, path)
	assert.Equal(t, 0, started.State().ActiveConstraint())
}

func TestRestoreStateWithNullOrientation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  position: [1, 2, 3]\n"), 0644))

	v := newTestViewer(t, "")
	ok, err := v.RestoreStateFromFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, mgl64.QuatIdent(), v.Camera().Frame().Orientation())
}
