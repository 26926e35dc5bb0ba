package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/philipparndt/dodecasphere/internal/config"
	"github.com/philipparndt/dodecasphere/internal/pipeline"
	"github.com/philipparndt/dodecasphere/version"
)

var rootCmd = &cobra.Command{
	Use:   "dodeca",
	Short: "Tessellate a sphere with a subdivided dodecahedron",
	Long: `dodeca builds a regular dodecahedron, splits each of its 12 pentagonal faces
into six smaller pentagons over three levels and projects the 2592 resulting
pentagons onto a sphere. The result can be exported, measured and previewed.

Parameters are read from defaults, an optional config file, DODECA_
environment variables and flags, in increasing order of precedence.`,
	Version: version.GetFullVersion(),
}

// conf holds the tessellation parameters shared by every command
var conf = config.New()

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (yaml, json or toml)")
	config.RegisterFlags(rootCmd.PersistentFlags())
	if err := conf.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

// loadConfig resolves the parameters of the current invocation
func loadConfig(v *viper.Viper) (config.Config, error) {
	return config.Load(v, v.GetString("config"))
}

// mustRun loads the configuration and runs the pipeline, exiting on error
func mustRun() *pipeline.Result {
	cfg, err := loadConfig(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	result, err := pipeline.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating tessellation: %v\n", err)
		os.Exit(1)
	}
	return result
}

func main() {
	if err := goflag.Set("logtostderr", "true"); err != nil {
		panic(err)
	}
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
