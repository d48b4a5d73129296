package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/go-drift/spots/internal/logger"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootFlags struct {
	verbose bool
	width   float64
	height  float64
}

var rootCmd = &cobra.Command{
	Use:   "spots",
	Short: "Lay out and snapshot data-driven spot components",
	Long: `spots resolves component documents (YAML or JSON) into spots, stacks them
in a scroll container and reports the resulting layout.

Settings come from ~/.config/spots/spots.yml, ./spots.yml and SPOTS_*
environment variables, in increasing order of precedence.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log to stderr")
	rootCmd.PersistentFlags().Float64Var(&rootFlags.width, "width", 0, "Viewport width (default: viewport_width setting)")
	rootCmd.PersistentFlags().Float64Var(&rootFlags.height, "height", 0, "Viewport height (default: viewport_height setting)")

	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(setupCmd)
}
