package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	t.Cleanup(w.Stop)
	return w
}

func waitForUpdate(t *testing.T, w *Watcher) *Config {
	t.Helper()
	select {
	case cfg := <-w.Updates():
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("no config update")
		return nil
	}
}

func TestWatcherReloadsChangedFile(t *testing.T) {
	t.Setenv("CONSTRAINEDCAMERA_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 640\n"), 0644))

	w := newTestWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 1280\n"), 0644))
	cfg := waitForUpdate(t, w)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestWatcherPicksUpCreatedFile(t *testing.T) {
	t.Setenv("CONSTRAINEDCAMERA_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "later.yaml")

	w := newTestWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("scene:\n  ribbon_scale: 42\n"), 0644))
	cfg := waitForUpdate(t, w)
	assert.Equal(t, 42.0, cfg.Scene.RibbonScale)
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	t.Setenv("CONSTRAINEDCAMERA_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	w := newTestWatcher(t, path)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -5\n"), 0644))
	time.Sleep(10 * w.debounce)
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 900\n"), 0644))

	cfg := waitForUpdate(t, w)
	assert.Equal(t, 900, cfg.Window.Width)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, filepath.Join(dir, "config.yaml"))
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("window:\n  width: 1\n"), 0644))
	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(10 * w.debounce):
	}
}

func TestWatcherStopsWithContext(t *testing.T) {
	w := newTestWatcher(t, filepath.Join(t.TempDir(), "config.yaml"))
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	cancel()
	select {
	case <-w.doneCh:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	w.Stop()
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"), nil)
	require.NoError(t, err)
	w.Stop()
	assert.NoError(t, w.Start(context.Background()), "starting a stopped watcher is a no-op")
}
