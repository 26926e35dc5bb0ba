package subdivide

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// DefaultDepth is the number of levels of the standard tessellation
const DefaultDepth = 3

// MaxDepth bounds the recursion; each level multiplies the facet count by six
const MaxDepth = 5

// Hierarchy holds the pentagons produced at every level of a build.
// Levels[0] holds the level 1 children, the last entry holds the leaves.
type Hierarchy struct {
	Levels [][]geometry.Pentagon
}

// Depth returns the number of levels in the hierarchy
func (h *Hierarchy) Depth() int {
	return len(h.Levels)
}

// Level returns the pentagons produced at the given level, starting at 1
func (h *Hierarchy) Level(level Level) []geometry.Pentagon {
	if level < 1 || int(level) > len(h.Levels) {
		return nil
	}
	return h.Levels[level-1]
}

// Leaves returns the pentagons of the deepest level
func (h *Hierarchy) Leaves() []geometry.Pentagon {
	if len(h.Levels) == 0 {
		return nil
	}
	return h.Levels[len(h.Levels)-1]
}

// LeafCount returns the number of leaves produced from faceCount faces
func LeafCount(faceCount, depth int) int {
	count := faceCount
	for i := 0; i < depth; i++ {
		count *= ChildCount
	}
	return count
}

// Build subdivides every face depth levels deep. Each child is recorded at
// its level before its own children, so every level keeps depth-first order.
func Build(faces []geometry.Pentagon, depth int) (*Hierarchy, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, errors.Wrapf(ErrInvalidLevel, "depth %d not in [1, %d]", depth, MaxDepth)
	}

	h := &Hierarchy{Levels: make([][]geometry.Pentagon, depth)}
	for i := range h.Levels {
		h.Levels[i] = make([]geometry.Pentagon, 0, LeafCount(len(faces), i+1))
	}

	for i, face := range faces {
		if err := h.expand(face, 1); err != nil {
			return nil, errors.Wrapf(err, "base face %d", i)
		}
		glog.V(2).Infof("Subdivided base face %d", i)
	}
	return h, nil
}

// BuildLeaves returns the leaves of a DefaultDepth build
func BuildLeaves(faces []geometry.Pentagon) ([]geometry.Pentagon, error) {
	h, err := Build(faces, DefaultDepth)
	if err != nil {
		return nil, err
	}
	return h.Leaves(), nil
}

func (h *Hierarchy) expand(face geometry.Pentagon, level Level) error {
	children, err := Subdivide(face, level)
	if err != nil {
		return errors.Wrapf(err, "level %d", level)
	}

	for _, child := range children {
		h.Levels[level-1] = append(h.Levels[level-1], child)
		if int(level) == len(h.Levels) {
			continue
		}
		if err := h.expand(feedForward(child), level+1); err != nil {
			return err
		}
	}
	return nil
}

// feedForward returns the face a child is subdivided as: vertices 1..5 of its
// closed outline, i.e. the child rotated left by one vertex.
func feedForward(child geometry.Pentagon) geometry.Pentagon {
	var next geometry.Pentagon
	copy(next[:], child.Closed()[1:6])
	return next
}
