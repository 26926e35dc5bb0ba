// Package pipeline runs the full tessellation: base faces, recursive
// subdivision and sphere projection of the leaves.
package pipeline

import (
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/philipparndt/dodecasphere/internal/config"
	"github.com/philipparndt/dodecasphere/pkg/geometry"
	"github.com/philipparndt/dodecasphere/pkg/polyhedron"
	"github.com/philipparndt/dodecasphere/pkg/sphere"
	"github.com/philipparndt/dodecasphere/pkg/subdivide"
)

// Result holds every stage of a run
type Result struct {
	Config    config.Config
	Base      []geometry.Pentagon
	Hierarchy *subdivide.Hierarchy
	// Projected holds the leaves after sphere projection, or the leaves
	// themselves when projection is disabled
	Projected []geometry.Pentagon
}

// Run builds the tessellation described by cfg
func Run(cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	faces := polyhedron.BaseFaces(cfg.Radius)
	base := faces[:]
	glog.V(1).Infof("Built %d base faces with circumradius %v", len(base), cfg.Radius)

	h, err := subdivide.Build(base, cfg.Depth)
	if err != nil {
		return nil, errors.Wrap(err, "subdividing base faces")
	}
	for i, level := range h.Levels {
		glog.V(1).Infof("Level %d: %d pentagons", i+1, len(level))
	}

	result := &Result{
		Config:    cfg,
		Base:      base,
		Hierarchy: h,
		Projected: h.Leaves(),
	}

	if cfg.Project {
		projector, err := sphere.NewProjector(cfg.RayOrigin(), cfg.Center(), cfg.SphereRadius)
		if err != nil {
			return nil, err
		}
		result.Projected = projector.ProjectAll(h.Leaves())
		glog.V(1).Infof("Projected %d leaves onto sphere of radius %v", len(result.Projected), cfg.SphereRadius)
	}

	glog.Infof("Generated %d facets in %v", len(result.Projected), time.Since(start))
	return result, nil
}

// Facets returns the output of the given level. Level 0 selects the base
// faces and the deepest level selects the projected leaves.
func (r *Result) Facets(level int) ([]geometry.Pentagon, error) {
	switch {
	case level == 0:
		return r.Base, nil
	case level == r.Hierarchy.Depth():
		return r.Projected, nil
	case level > 0 && level < r.Hierarchy.Depth():
		return r.Hierarchy.Level(subdivide.Level(level)), nil
	default:
		return nil, errors.Wrapf(subdivide.ErrInvalidLevel, "level %d not in [0, %d]", level, r.Hierarchy.Depth())
	}
}
