package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/internal/pipeline"
	"github.com/philipparndt/dodecasphere/pkg/analysis"
	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

var infoLevel int

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the tessellation",
	Long:  "Show the pentagon count of every level and measurements of one level, including areas, edge lengths, vertex radii and sphere coverage.",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoLevel, "level", "l", -1, "Level to measure (default deepest)")
}

func runInfo(cmd *cobra.Command, args []string) {
	result := mustRun()
	cfg := result.Config

	level, facets := selectLevel(result, infoLevel)

	fmt.Println("Tessellation Information")
	fmt.Println("========================")
	if cfg.File != "" {
		fmt.Printf("Config: %s\n", cfg.File)
	}
	fmt.Printf("Circumradius: %.6f units\n", cfg.Radius)
	if cfg.Project {
		fmt.Printf("Sphere: radius %.6f, center %s\n", cfg.SphereRadius, analysis.FormatVector(cfg.Center()))
	} else {
		fmt.Println("Sphere: projection disabled")
	}
	fmt.Println()

	fmt.Println("Levels:")
	fmt.Printf("  Level 0: %d pentagons\n", len(result.Base))
	for i, l := range result.Hierarchy.Levels {
		fmt.Printf("  Level %d: %d pentagons\n", i+1, len(l))
	}
	fmt.Println()

	fmt.Printf("Level %d\n", level)
	printReport(analysis.AnalyzeFacets(facets))

	if cfg.Project && level == result.Hierarchy.Depth() {
		printCoverage(analysis.SphericalCoverage(facets, cfg.Center(), cfg.SphereRadius))
	}
}

// printReport prints the measurements of a facet list
func printReport(r *analysis.Report) {
	fmt.Println("Facet Statistics:")
	fmt.Printf("  Pentagons: %d\n", r.FacetCount)
	fmt.Printf("  Vertices: %d (%d unique)\n", r.VertexCount, r.UniqueVertices)
	fmt.Printf("  Edges: %d\n", r.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", r.TotalArea)
	if r.FacetCount == 0 {
		return
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(r.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(r.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(r.BoundingBox.Center()))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatMeasurement(r.BoundingBox.Diagonal(), ""))

	fmt.Println("Facet Areas:")
	printStats(r.MinArea, r.MaxArea, r.AvgArea, "square units")

	fmt.Println("Edge Lengths:")
	printStats(r.MinEdge, r.MaxEdge, r.AvgEdge, "")

	fmt.Println("Vertex Radii:")
	printStats(r.MinRadius, r.MaxRadius, r.AvgRadius, "")

	fmt.Println("Circumcircles:")
	fmt.Printf("  Radius: %s to %s\n", analysis.FormatMeasurement(r.MinCircumradius, ""), analysis.FormatMeasurement(r.MaxCircumradius, ""))
	fmt.Printf("  Max deviation: %s\n\n", analysis.FormatMeasurement(r.MaxCircleError, ""))
}

func printStats(lo, hi, avg float64, unit string) {
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(lo, unit))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(hi, unit))
	fmt.Printf("  Average: %s\n\n", analysis.FormatMeasurement(avg, unit))
}

// printCoverage prints how much of the sphere the facets cover
func printCoverage(c analysis.Coverage) {
	fmt.Println("Sphere Coverage:")
	fmt.Printf("  Solid Angle: %.6f sr (%.4f%% of the sphere)\n", c.SolidAngle, c.Fraction*100)
	fmt.Printf("  Area: %.6f square units\n", c.Area)
	fmt.Printf("  Smallest Facet: %.6f sr\n", c.MinFacet)
	fmt.Printf("  Largest Facet: %.6f sr\n", c.MaxFacet)
}

// selectLevel resolves a level flag, negative meaning the deepest level
func selectLevel(result *pipeline.Result, level int) (int, []geometry.Pentagon) {
	if level < 0 {
		level = result.Hierarchy.Depth()
	}
	facets, err := result.Facets(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return level, facets
}
