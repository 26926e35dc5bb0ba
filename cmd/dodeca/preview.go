package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/pkg/preview"
)

var (
	previewOutput string
	previewWidth  int
	previewHeight int
	previewRotX   float64
	previewRotY   float64
	previewLevel  int
	previewFill   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the outlines of one level to a PNG image",
	Long:  "Render every pentagon of one level as a closed outline seen through an orthographic camera on the +Z axis.",
	Args:  cobra.NoArgs,
	Run:   runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	defaults := preview.DefaultOptions()
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.png", "Output PNG file")
	previewCmd.Flags().IntVar(&previewWidth, "width", defaults.Width, "Image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", defaults.Height, "Image height in pixels")
	previewCmd.Flags().Float64Var(&previewRotX, "rot-x", 0, "Camera elevation in degrees")
	previewCmd.Flags().Float64Var(&previewRotY, "rot-y", 0, "Camera azimuth in degrees")
	previewCmd.Flags().IntVarP(&previewLevel, "level", "l", -1, "Level to render (default deepest)")
	previewCmd.Flags().BoolVar(&previewFill, "fill", false, "Shade facets and hide the far side")
}

func runPreview(cmd *cobra.Command, args []string) {
	level, facets := selectLevel(mustRun(), previewLevel)

	opts := preview.DefaultOptions()
	opts.Width = previewWidth
	opts.Height = previewHeight
	opts.RotationX = mgl64.DegToRad(previewRotX)
	opts.RotationY = mgl64.DegToRad(previewRotY)
	opts.Fill = previewFill

	if err := preview.SavePNG(previewOutput, facets, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering preview: %v\n", err)
		os.Exit(1)
	}
	glog.Infof("Rendered %d facets of level %d to %s", len(facets), level, previewOutput)
}
