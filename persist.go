package constrainedcamera

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// viewerStateFile is the YAML layout of a saved viewer state.
type viewerStateFile struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	Camera struct {
		Position    [3]float64 `yaml:"position"`
		Orientation [4]float64 `yaml:"orientation"` // w, x, y, z
		Pivot       [3]float64 `yaml:"pivot"`
	} `yaml:"camera"`

	Display struct {
		AxisIsDrawn     bool `yaml:"axis_is_drawn"`
		FPSIsDisplayed  bool `yaml:"fps_is_displayed"`
		HelpIsDisplayed bool `yaml:"help_is_displayed"`
	} `yaml:"display"`
}

// SaveStateToFile writes the window size, the camera frame and the display
// flags to path.
func (v *Viewer) SaveStateToFile(path string) error {
	var st viewerStateFile
	st.Window.Width, st.Window.Height = v.width, v.height

	frame := v.camera.Frame()
	st.Camera.Position = frame.Position()
	q := frame.Orientation()
	st.Camera.Orientation = [4]float64{q.W, q.V[0], q.V[1], q.V[2]}
	st.Camera.Pivot = v.camera.Pivot()

	st.Display.AxisIsDrawn = v.axisIsDrawn
	st.Display.FPSIsDisplayed = v.fpsIsDisplayed
	st.Display.HelpIsDisplayed = v.helpIsDisplayed

	data, err := yaml.Marshal(&st)
	if err != nil {
		return fmt.Errorf("failed to marshal viewer state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write viewer state: %w", err)
	}
	return nil
}

// RestoreStateFromFile reads a state written by SaveStateToFile. It reports
// false without error when path does not exist.
func (v *Viewer) RestoreStateFromFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read viewer state: %w", err)
	}

	var st viewerStateFile
	if err := yaml.Unmarshal(data, &st); err != nil {
		return false, fmt.Errorf("failed to parse viewer state: %w", err)
	}

	if st.Window.Width > 0 && st.Window.Height > 0 {
		v.width, v.height = st.Window.Width, st.Window.Height
	}

	frame := v.camera.Frame()
	frame.SetPosition(mgl64.Vec3(st.Camera.Position))
	o := st.Camera.Orientation
	frame.SetOrientation(mgl64.Quat{W: o[0], V: mgl64.Vec3{o[1], o[2], o[3]}})
	v.camera.SetPivot(mgl64.Vec3(st.Camera.Pivot))

	v.axisIsDrawn = st.Display.AxisIsDrawn
	v.fpsIsDisplayed = st.Display.FPSIsDisplayed
	v.helpIsDisplayed = st.Display.HelpIsDisplayed

	v.update()
	return true, nil
}
