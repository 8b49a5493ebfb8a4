package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vrmviewer",
	Short: "View and pose VRM avatars",
	Long: `vrmviewer opens a VRM, GLB or glTF model and shows its humanoid skeleton.
Drag to orbit the camera, click a joint to select it and drag the gizmo to pose it.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
