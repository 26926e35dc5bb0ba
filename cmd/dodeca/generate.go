package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/philipparndt/dodecasphere/internal/pipeline"
	"github.com/philipparndt/dodecasphere/pkg/export"
	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/stl"
	"github.com/philipparndt/dodecasphere/pkg/watcher"
)

// Output formats of the generate command
const (
	formatJSON      = "json"
	formatSTL       = "stl"
	formatSTLBinary = "stl-binary"
	formatGeoJSON   = "geojson"
)

var (
	generateOutput string
	generateFormat string
	generateLevel  int
	generateWatch  bool

	// generateMu serialises regenerations triggered by the watcher
	generateMu sync.Mutex
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the tessellation and export it",
	Long: `Generate the tessellation and write the facets of one level as JSON, ASCII STL,
binary STL or GeoJSON. Level 0 selects the base faces, the default selects the
final (projected) leaves. With --watch the output is regenerated every time the
config file changes.`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatJSON, "Output format: json, stl, stl-binary or geojson")
	generateCmd.Flags().IntVarP(&generateLevel, "level", "l", -1, "Level to export (default deepest)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when the config file changes")
}

func runGenerate(cmd *cobra.Command, args []string) {
	if err := generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !generateWatch {
		return
	}

	cfgFile := conf.GetString("config")
	if cfgFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch requires --config")
		os.Exit(1)
	}

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	err = fw.Watch([]string{cfgFile}, func(string) {
		if err := generate(); err != nil {
			glog.Errorf("Regeneration failed: %v", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()
	glog.Infof("Watching %s for changes, press Ctrl+C to stop", cfgFile)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

// generate runs the pipeline once and writes the selected level
func generate() error {
	generateMu.Lock()
	defer generateMu.Unlock()

	cfg, err := loadConfig(conf)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	result, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}

	level := generateLevel
	if level < 0 {
		level = result.Hierarchy.Depth()
	}
	facets, err := result.Facets(level)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if generateOutput != "" {
		file, err := os.Create(generateOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", generateOutput, err)
		}
		defer file.Close()
		w = file
	}

	if err := writeFacets(w, generateFormat, result, level, facets); err != nil {
		return err
	}
	if generateOutput != "" {
		glog.Infof("Wrote %d facets of level %d to %s", len(facets), level, generateOutput)
	}
	return nil
}

// writeFacets encodes facets of the given level in format
func writeFacets(w io.Writer, format string, result *pipeline.Result, level int, facets []geometry.Pentagon) error {
	cfg := result.Config
	switch format {
	case formatJSON:
		params := export.Parameters{
			Radius: cfg.Radius,
			Depth:  cfg.Depth,
			Level:  level,
		}
		if level == result.Hierarchy.Depth() && cfg.Project {
			params.SphereRadius = cfg.SphereRadius
			params.SphereCenter = cfg.SphereCenter
			params.Projected = true
		}
		return export.WriteJSON(w, export.NewDocument(params, facets))
	case formatSTL:
		return stl.WriteASCII(w, stl.FromFacets(modelName(level), facets))
	case formatSTLBinary:
		return stl.WriteBinary(w, stl.FromFacets(modelName(level), facets))
	case formatGeoJSON:
		return export.WriteGeoJSON(w, facets, cfg.Center(), level)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func modelName(level int) string {
	return fmt.Sprintf("dodecasphere-level-%d", level)
}
