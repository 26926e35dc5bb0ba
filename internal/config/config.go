// Package config resolves the tessellation parameters from defaults, an
// optional config file, DODECA_ environment variables and command flags.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/subdivide"
)

// ErrInvalidConfig is returned when a parameter is out of range
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is the prefix of environment variables overriding parameters
const EnvPrefix = "DODECA"

// Keys of the configurable parameters
const (
	KeyRadius       = "radius"
	KeySphereRadius = "sphere_radius"
	KeyDepth        = "depth"
	KeySphereCenter = "sphere_center"
	KeyOrigin       = "origin"
	KeyProject      = "project"
)

// Config holds the parameters of one tessellation run
type Config struct {
	Radius       float64   `mapstructure:"radius"`
	SphereRadius float64   `mapstructure:"sphere_radius"`
	Depth        int       `mapstructure:"depth"`
	SphereCenter []float64 `mapstructure:"sphere_center"`
	Origin       []float64 `mapstructure:"origin"`
	Project      bool      `mapstructure:"project"`

	// File is the config file the parameters were read from, if any
	File string `mapstructure:"-"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Radius:       2.0,
		SphereRadius: 1.7,
		Depth:        subdivide.DefaultDepth,
		SphereCenter: []float64{0, 0, 0},
		Origin:       []float64{0, 0, 0},
		Project:      true,
	}
}

// New returns a viper instance preloaded with the defaults and bound to the
// environment
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyRadius, d.Radius)
	v.SetDefault(KeySphereRadius, d.SphereRadius)
	v.SetDefault(KeyDepth, d.Depth)
	v.SetDefault(KeySphereCenter, d.SphereCenter)
	v.SetDefault(KeyOrigin, d.Origin)
	v.SetDefault(KeyProject, d.Project)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the scalar parameter flags to a flag set. The vector
// parameters are read from the config file or the environment only.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.Float64(KeyRadius, d.Radius, "Dodecahedron circumradius")
	flags.Float64(KeySphereRadius, d.SphereRadius, "Radius of the projection sphere")
	flags.Int(KeyDepth, d.Depth, "Number of subdivision levels")
	flags.Bool(KeyProject, d.Project, "Project the leaves onto the sphere")
}

// Load reads the optional config file and decodes every parameter. Flags
// bound to v take precedence over the file.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	cfg.File = file
	return cfg, cfg.Validate()
}

// Validate checks that every parameter is in range
func (c Config) Validate() error {
	if !(c.Radius > 0) {
		return errors.Wrapf(ErrInvalidConfig, "radius must be positive, got %v", c.Radius)
	}
	if !(c.SphereRadius > 0) {
		return errors.Wrapf(ErrInvalidConfig, "sphere_radius must be positive, got %v", c.SphereRadius)
	}
	if c.Depth < 1 || c.Depth > subdivide.MaxDepth {
		return errors.Wrapf(ErrInvalidConfig, "depth must be between 1 and %d, got %d", subdivide.MaxDepth, c.Depth)
	}
	if len(c.SphereCenter) != 3 {
		return errors.Wrapf(ErrInvalidConfig, "sphere_center needs 3 components, got %d", len(c.SphereCenter))
	}
	if len(c.Origin) != 3 {
		return errors.Wrapf(ErrInvalidConfig, "origin needs 3 components, got %d", len(c.Origin))
	}
	return nil
}

// Center returns the projection sphere center
func (c Config) Center() geometry.Vector3 {
	return toVector(c.SphereCenter)
}

// RayOrigin returns the origin of the projection rays
func (c Config) RayOrigin() geometry.Vector3 {
	return toVector(c.Origin)
}

func toVector(components []float64) geometry.Vector3 {
	if len(components) != 3 {
		return geometry.Vector3{}
	}
	return geometry.NewVector3(components[0], components[1], components[2])
}
