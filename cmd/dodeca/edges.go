package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/pkg/analysis"
)

var (
	edgesCount     int
	edgesLevel     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "Analyze and measure the edges of one level",
	Long:  "Find and measure pentagon edges, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.NoArgs,
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().IntVar(&edgesLevel, "level", -1, "Level to measure (default deepest)")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runEdges(cmd *cobra.Command, args []string) {
	level, facets := selectLevel(mustRun(), edgesLevel)
	result := analysis.AnalyzeFacets(facets)

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else if edgesMaxLength > 0 {
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	} else {
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Printf("Level %d: %s\n", level, title)
	fmt.Println("====================")
	fmt.Printf("Total edges: %d\n", result.EdgeCount)
	fmt.Printf("Min edge length: %.6f units\n", result.MinEdge)
	fmt.Printf("Max edge length: %.6f units\n", result.MaxEdge)
	fmt.Printf("Avg edge length: %.6f units\n\n", result.AvgEdge)

	if len(edges) > 0 {
		fmt.Printf("%-6s %-7s %-35s %-35s %-15s\n", "Index", "Facet", "Start", "End", "Length")
		fmt.Println("-------------------------------------------------------------------------------------------------------------------")
		for i, edge := range edges {
			fmt.Printf("%-6d %-7d %-35s %-35s %-15.6f\n",
				i+1,
				edge.FacetID,
				analysis.FormatVector(edge.Start),
				analysis.FormatVector(edge.End),
				edge.Length)
		}
	} else {
		fmt.Println("No edges found matching the criteria.")
	}
}
