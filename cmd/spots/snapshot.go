package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/go-drift/spots/internal/logger"
	"github.com/go-drift/spots/pkg/snapshot"
)

var snapshotFlags struct {
	output string
	json   string
	scale  float64
	labels bool
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot FILE",
	Short: "Render a wireframe PNG of a component document",
	Long: `Lay out FILE like the layout command and draw the result as a PNG
wireframe. Use --json to also write the frame snapshot, which can be checked
in as a golden file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotFlags.output, "output", "o", "", "PNG output path (default: <file name slug>.png)")
	snapshotCmd.Flags().StringVar(&snapshotFlags.json, "json", "", "Also write the JSON snapshot to this path")
	snapshotCmd.Flags().Float64Var(&snapshotFlags.scale, "scale", 0, "Output scale (default: snapshot_scale setting)")
	snapshotCmd.Flags().BoolVar(&snapshotFlags.labels, "labels", true, "Draw item titles")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctrl, err := a.load(args[0])
	if err != nil {
		return err
	}
	snap := snapshot.CaptureController(ctrl)

	output := snapshotFlags.output
	if output == "" {
		output = defaultOutput(args[0])
	}
	scale := snapshotFlags.scale
	if scale <= 0 {
		scale = a.cfg.SnapshotScale
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	renderErr := snap.RenderPNG(f, snapshot.RenderOptions{Scale: scale, Labels: snapshotFlags.labels})
	if err := f.Close(); err != nil && renderErr == nil {
		renderErr = err
	}
	if renderErr != nil {
		return fmt.Errorf("rendering %s: %w", output, renderErr)
	}
	logger.Info("wrote %s", output)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)

	if snapshotFlags.json != "" {
		if err := snap.UpdateFile(snapshotFlags.json); err != nil {
			return fmt.Errorf("writing %s: %w", snapshotFlags.json, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", snapshotFlags.json)
	}
	return nil
}

// defaultOutput derives a PNG name from the document's file name.
func defaultOutput(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := slug.Make(stem)
	if name == "" {
		name = "snapshot"
	}
	return name + ".png"
}
