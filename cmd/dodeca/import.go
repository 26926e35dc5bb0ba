package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/pkg/analysis"
	"github.com/philipparndt/dodecasphere/pkg/export"
	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Read a JSON export and print its measurements",
	Args:  cobra.ExactArgs(1),
	Run:   runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := export.LoadJSON(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export: %v\n", err)
		os.Exit(1)
	}
	facets, err := doc.Pentagons()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding facets: %v\n", err)
		os.Exit(1)
	}

	p := doc.Parameters
	fmt.Println("Export Information")
	fmt.Println("==================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Format version: %s\n", doc.Version)
	fmt.Printf("Circumradius: %.6f units, depth %d, level %d\n", p.Radius, p.Depth, p.Level)
	if p.Projected {
		fmt.Printf("Projected onto sphere of radius %.6f\n", p.SphereRadius)
	}
	fmt.Println()

	printReport(analysis.AnalyzeFacets(facets))

	if p.Projected {
		center := geometry.Origin
		if len(p.SphereCenter) == 3 {
			center = geometry.NewVector3(p.SphereCenter[0], p.SphereCenter[1], p.SphereCenter[2])
		}
		printCoverage(analysis.SphericalCoverage(facets, center, p.SphereRadius))
	}
}
