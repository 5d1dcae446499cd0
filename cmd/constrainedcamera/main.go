package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smasonuk/constrainedcamera"
	"github.com/smasonuk/constrainedcamera/internal/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	statePath   string
	writeConfig bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "constrainedcamera",
	Short: "Move a camera around a ribbon under axis and plane constraints",
	Long: `constrainedcamera opens a window showing a spiral ribbon.

Drag with the left button to rotate the camera around the scene, with the
right button to pan, and use the wheel to zoom. Translations and rotations
are filtered by a constraint that can be edited from the keyboard
(see "constrainedcamera keys").`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if statePath != "" {
			cfg.StateFile = statePath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		level, _ := cfg.LogLevel()
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeConfig {
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			logger.Info("wrote config", zap.String("file", configPath))
			return nil
		}
		return runViewer()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "constrainedcamera.yaml", "Configuration file")
	rootCmd.Flags().StringVarP(&statePath, "state", "s", "", "Viewer state file (default from config)")
	rootCmd.Flags().BoolVar(&writeConfig, "write-config", false, "Write the effective configuration to the config file and exit")

	rootCmd.AddCommand(keysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runViewer() error {
	viewer, err := constrainedcamera.NewViewer(cfg, logger)
	if err != nil {
		return err
	}

	width, height := viewer.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting viewer",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("stateFile", cfg.StateFile))

	game := constrainedcamera.NewGame(viewer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher, err := config.NewWatcher(configPath, logger); err != nil {
		logger.Warn("config reload disabled", zap.Error(err))
	} else {
		defer watcher.Stop()
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("config reload disabled", zap.Error(err))
		} else {
			game.SetConfigUpdates(watcher.Updates())
		}
	}

	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}

	if cfg.StateFile != "" {
		if err := viewer.SaveStateToFile(cfg.StateFile); err != nil {
			logger.Error("could not save viewer state", zap.String("file", cfg.StateFile), zap.Error(err))
		} else {
			logger.Info("saved viewer state", zap.String("file", cfg.StateFile))
		}
	}

	if runErr != nil {
		return fmt.Errorf("viewer stopped: %w", runErr)
	}
	return nil
}
