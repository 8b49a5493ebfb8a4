package main

import (
	"log"
	"runtime"

	"github.com/Carmen-Shannon/vrm-viewer/engine"
	"github.com/Carmen-Shannon/vrm-viewer/engine/config"
	"github.com/spf13/cobra"
)

var (
	viewConfig  string
	viewWatch   bool
	viewMap     bool
	viewProfile bool
	viewRedraw  float64
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a model in the viewer window",
	Long: `Open a model and show its skeleton. Left drag orbits, right drag pans and the
wheel dollies (swapped with --map). Click a joint to select it; W, E and R switch
the gizmo between translate, rotate and scale, Q toggles local and world space.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewConfig, "config", "c", "", "TOML configuration file")
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "reload the model when the file changes")
	viewCmd.Flags().BoolVar(&viewMap, "map", false, "use map controls: left button pans, right button rotates")
	viewCmd.Flags().BoolVar(&viewProfile, "profile", false, "log frame and memory statistics every second")
	viewCmd.Flags().Float64Var(&viewRedraw, "redraw-rate", 0, "redraw at least this many times per second (0 redraws on change)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()

	cfg, err := loadConfig(viewConfig)
	if err != nil {
		return err
	}

	v, err := engine.NewViewer(
		engine.WithConfig(cfg),
		engine.WithLogger(log.Default()),
		engine.WithWatch(viewWatch),
		engine.WithMapControls(viewMap),
		engine.WithProfiling(viewProfile),
		engine.WithRedrawRate(viewRedraw),
	)
	if err != nil {
		return err
	}
	v.Load(args[0])
	return v.Run()
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
