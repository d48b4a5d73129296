package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/spots/pkg/snapshot"
)

var layoutFlags struct {
	json bool
}

var layoutCmd = &cobra.Command{
	Use:   "layout FILE",
	Short: "Print the layout of a component document",
	Long: `Resolve every component in FILE, stack the spots in a scroll container
sized to the viewport, and print each spot's frame, content size and item
frames.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&layoutFlags.json, "json", false, "Print the snapshot as JSON")
}

func runLayout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctrl, err := a.load(args[0])
	if err != nil {
		return err
	}

	snap := snapshot.CaptureController(ctrl)
	out := cmd.OutOrStdout()
	if layoutFlags.json {
		data, err := snap.MarshalIndent()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	printLayout(out, snap)
	return nil
}

func printLayout(w io.Writer, snap *snapshot.Snapshot) {
	fmt.Fprintf(w, "viewport %gx%g, content %gx%g\n",
		snap.Viewport[0], snap.Viewport[1], snap.ContentSize[0], snap.ContentSize[1])
	for _, v := range snap.Views {
		fmt.Fprintf(w, "%s %q frame=%s content=%gx%g\n",
			v.ID, v.Title, formatRect(v.Frame), v.ContentSize[0], v.ContentSize[1])
		for _, item := range v.Items {
			fmt.Fprintf(w, "  [%d] %q %s\n", item.Index, item.Title, formatRect(item.Frame))
		}
	}
}

func formatRect(r [4]float64) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r[0], r[1], r[2], r[3])
}
